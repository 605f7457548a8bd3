package domain

import "context"

type MatchResult struct {
	PostingID    string `json:"id"`
	Title        string `json:"title"`
	MatchPercent int    `json:"matchPercent"`
}

type MatchUsecase interface {
	// Recommend ranks every posting of type t against the user's skills.
	// A user without a profile gets an empty list.
	Recommend(ctx context.Context, userID string, t PostingType) ([]MatchResult, error)
}
