package usecase

import (
	"context"
	"fmt"

	"skillmatch-backend/internal/domain"

	"golang.org/x/sync/errgroup"
)

type postingUsecase struct {
	store domain.DocumentStore
}

func NewPostingUsecase(store domain.DocumentStore) domain.PostingUsecase {
	return &postingUsecase{store: store}
}

func (u *postingUsecase) List(ctx context.Context, t domain.PostingType) ([]domain.Posting, error) {
	docs, err := u.store.List(ctx, t.Collection())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.Collection(), err)
	}
	return domain.PostingsFromDocuments(t, docs), nil
}

func (u *postingUsecase) ListAll(ctx context.Context) ([]domain.Posting, error) {
	var hackathons, internships []domain.Posting

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hackathons, err = u.List(gctx, domain.PostingHackathon)
		return err
	})
	g.Go(func() error {
		var err error
		internships, err = u.List(gctx, domain.PostingInternship)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]domain.Posting, 0, len(hackathons)+len(internships))
	all = append(all, hackathons...)
	return append(all, internships...), nil
}
