package main

import (
	"context"

	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/repository/memory"
)

// profileOverlay reads postings from the configured store and keeps user
// profiles in memory, so local flags never touch stored profiles.
type profileOverlay struct {
	postings domain.DocumentStore
	profiles *memory.DocumentStore
}

func newProfileOverlay(postings domain.DocumentStore) *profileOverlay {
	return &profileOverlay{postings: postings, profiles: memory.NewDocumentStore()}
}

func (o *profileOverlay) route(collection string) domain.DocumentStore {
	if collection == domain.CollectionUsers {
		return o.profiles
	}
	return o.postings
}

func (o *profileOverlay) Get(ctx context.Context, collection, id string) (domain.Document, bool, error) {
	return o.route(collection).Get(ctx, collection, id)
}

func (o *profileOverlay) Merge(ctx context.Context, collection, id string, patch domain.Patch) error {
	return o.route(collection).Merge(ctx, collection, id, patch)
}

func (o *profileOverlay) List(ctx context.Context, collection string) ([]domain.StoredDocument, error) {
	return o.route(collection).List(ctx, collection)
}
