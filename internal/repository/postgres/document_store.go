package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"skillmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// DefaultDocumentsTable is used when no table name is configured.
const DefaultDocumentsTable = "documents"

// DocumentStore keeps schemaless documents as JSONB rows keyed by (collection, id).
type DocumentStore struct {
	db    *pgxpool.Pool
	table string // quoted identifier
}

func NewDocumentStore(db *pgxpool.Pool, table string) *DocumentStore {
	if table == "" {
		table = DefaultDocumentsTable
	}
	return &DocumentStore{db: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the documents table when missing.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		)`, s.table)
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (domain.Document, bool, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE collection = $1 AND id = $2`, s.table)

	var raw []byte
	err := s.db.QueryRow(ctx, query, collection, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return doc, true, nil
}

// Merge applies the patch under a row lock, so concurrent unions on the same
// document never lose values.
func (s *DocumentStore) Merge(ctx context.Context, collection, id string, patch domain.Patch) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Make sure the row exists so FOR UPDATE has something to lock.
	insertQuery := fmt.Sprintf(`INSERT INTO %s (collection, id) VALUES ($1, $2) ON CONFLICT (collection, id) DO NOTHING`, s.table)
	if _, err := tx.Exec(ctx, insertQuery, collection, id); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	var raw []byte
	selectQuery := fmt.Sprintf(`SELECT data FROM %s WHERE collection = $1 AND id = $2 FOR UPDATE`, s.table)
	if err := tx.QueryRow(ctx, selectQuery, collection, id).Scan(&raw); err != nil {
		return fmt.Errorf("failed to lock document: %w", err)
	}

	current, err := decodeDocument(raw)
	if err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}

	merged, err := json.Marshal(patch.Apply(current))
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	updateQuery := fmt.Sprintf(`UPDATE %s SET data = $3::jsonb, updated_at = NOW() WHERE collection = $1 AND id = $2`, s.table)
	if _, err := tx.Exec(ctx, updateQuery, collection, id, string(merged)); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *DocumentStore) List(ctx context.Context, collection string) ([]domain.StoredDocument, error) {
	query := fmt.Sprintf(`SELECT id, data FROM %s WHERE collection = $1 ORDER BY created_at, id`, s.table)

	rows, err := s.db.Query(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []domain.StoredDocument{}
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		docs = append(docs, domain.StoredDocument{ID: id, Data: doc})
	}
	return docs, rows.Err()
}

// Put replaces a whole document. Used for catalog imports.
func (s *DocumentStore) Put(ctx context.Context, collection, id string, doc domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (collection, id, data) VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`, s.table)
	_, err = s.db.Exec(ctx, query, collection, id, string(raw))
	return err
}

func decodeDocument(raw []byte) (domain.Document, error) {
	doc := domain.Document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
