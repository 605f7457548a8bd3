package memory

import (
	"context"
	"sync"

	"skillmatch-backend/internal/domain"
)

type entry struct {
	id  string
	doc domain.Document
}

// DocumentStore is an in-process document store. Documents are returned as
// copies and listed in insertion order.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]*entry
	index       map[string]map[string]*entry
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string][]*entry),
		index:       make(map[string]map[string]*entry),
	}
}

func (s *DocumentStore) Get(_ context.Context, collection, id string) (domain.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.index[collection][id]
	if !ok {
		return nil, false, nil
	}
	return e.doc.Clone(), true, nil
}

func (s *DocumentStore) Merge(_ context.Context, collection, id string, patch domain.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookupOrCreate(collection, id)
	e.doc = patch.Apply(e.doc)
	return nil
}

func (s *DocumentStore) List(_ context.Context, collection string) ([]domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.StoredDocument, 0, len(s.collections[collection]))
	for _, e := range s.collections[collection] {
		docs = append(docs, domain.StoredDocument{ID: e.id, Data: e.doc.Clone()})
	}
	return docs, nil
}

// Put replaces a whole document.
func (s *DocumentStore) Put(_ context.Context, collection, id string, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookupOrCreate(collection, id)
	e.doc = doc.Clone()
	if e.doc == nil {
		e.doc = domain.Document{}
	}
	return nil
}

func (s *DocumentStore) Ping(context.Context) error {
	return nil
}

func (s *DocumentStore) lookupOrCreate(collection, id string) *entry {
	byID, ok := s.index[collection]
	if !ok {
		byID = make(map[string]*entry)
		s.index[collection] = byID
	}
	e, ok := byID[id]
	if !ok {
		e = &entry{id: id, doc: domain.Document{}}
		byID[id] = e
		s.collections[collection] = append(s.collections[collection], e)
	}
	return e
}
