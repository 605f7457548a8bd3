package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"skillmatch-backend/internal/domain"
)

// documentWriter replaces whole documents; both stores implement it.
type documentWriter interface {
	Put(ctx context.Context, collection, id string, doc domain.Document) error
}

// catalog is the file format accepted by --catalog:
//
//	{"internships": [{"id": "i1", ...}], "hackathons": [{"id": "h1", ...}]}
type catalog struct {
	Internships []domain.Document `json:"internships"`
	Hackathons  []domain.Document `json:"hackathons"`
}

func loadCatalogFile(path string) (*catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadCatalog(f)
}

func loadCatalog(r io.Reader) (*catalog, error) {
	var cat catalog
	if err := json.NewDecoder(r).Decode(&cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &cat, nil
}

// importInto writes every posting, keyed by its "id" field, which is not
// stored in the document body. It returns the number of documents written.
func (c *catalog) importInto(ctx context.Context, w documentWriter) (int, error) {
	sets := []struct {
		t    domain.PostingType
		docs []domain.Document
	}{
		{domain.PostingInternship, c.Internships},
		{domain.PostingHackathon, c.Hackathons},
	}

	n := 0
	for _, set := range sets {
		for i, doc := range set.docs {
			id, ok := doc.Text("id")
			if !ok || id == "" {
				return n, fmt.Errorf("%s #%d: missing string id", set.t, i)
			}
			body := doc.Clone()
			delete(body, "id")
			if err := w.Put(ctx, set.t.Collection(), id, body); err != nil {
				return n, fmt.Errorf("%s %s: %w", set.t, id, err)
			}
			n++
		}
	}
	return n, nil
}
