package usecase

import (
	"context"
	"fmt"

	"skillmatch-backend/internal/domain"
)

type matchUsecase struct {
	store    domain.DocumentStore
	postings domain.PostingUsecase
}

func NewMatchUsecase(store domain.DocumentStore, postings domain.PostingUsecase) domain.MatchUsecase {
	return &matchUsecase{store: store, postings: postings}
}

func (u *matchUsecase) Recommend(ctx context.Context, userID string, t domain.PostingType) ([]domain.MatchResult, error) {
	doc, found, err := u.store.Get(ctx, domain.CollectionUsers, userID)
	if err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	if !found {
		return []domain.MatchResult{}, nil
	}
	profile := domain.ProfileFromDocument(userID, doc)

	postings, err := u.postings.List(ctx, t)
	if err != nil {
		return nil, err
	}
	return RankPostings(profile.Skills, postings), nil
}
