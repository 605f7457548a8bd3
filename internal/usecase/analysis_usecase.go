package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"skillmatch-backend/internal/domain"
)

type analysisUsecase struct {
	store          domain.DocumentStore
	inference      domain.InferenceClient
	maxResumeChars int
	log            *slog.Logger
}

func NewAnalysisUsecase(store domain.DocumentStore, inference domain.InferenceClient, maxResumeChars int, log *slog.Logger) domain.AnalysisUsecase {
	if maxResumeChars <= 0 {
		maxResumeChars = DefaultResumeMaxChars
	}
	if log == nil {
		log = slog.Default()
	}
	return &analysisUsecase{
		store:          store,
		inference:      inference,
		maxResumeChars: maxResumeChars,
		log:            log,
	}
}

func (u *analysisUsecase) Analyze(ctx context.Context, req domain.AnalysisRequest) string {
	result := u.Evaluate(ctx, req)
	if !result.OK() {
		u.log.Warn("Analysis not produced",
			"kind", result.Kind,
			"user_id", req.UserID,
			"posting_id", req.PostingID,
			"type", req.Type,
			"error", result.Err,
		)
	}
	return result.Message()
}

// Evaluate runs the analysis steps in order: user lookup, type check, posting
// lookup, prompt, a single inference call. Every failure becomes a result kind.
func (u *analysisUsecase) Evaluate(ctx context.Context, req domain.AnalysisRequest) (result domain.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.AnalysisFailed(fmt.Errorf("panic: %v", r))
		}
	}()

	userDoc, found, err := u.store.Get(ctx, domain.CollectionUsers, req.UserID)
	if err != nil {
		return domain.AnalysisFailed(fmt.Errorf("get user profile: %w", err))
	}
	if !found {
		return domain.ProfileNotFound()
	}
	profile := domain.ProfileFromDocument(req.UserID, userDoc)

	postingType, ok := domain.ParsePostingType(req.Type)
	if !ok {
		return domain.InvalidAnalysisType()
	}

	postingDoc, found, err := u.store.Get(ctx, postingType.Collection(), req.PostingID)
	if err != nil {
		return domain.AnalysisFailed(fmt.Errorf("get %s: %w", postingType, err))
	}
	if !found {
		return domain.PostingNotFound(postingType)
	}
	posting := domain.Posting{ID: req.PostingID, Type: postingType, Fields: postingDoc}

	prompt, err := BuildAnalysisPrompt(NewPromptInput(posting, profile, u.maxResumeChars))
	if err != nil {
		return domain.AnalysisFailed(fmt.Errorf("build prompt: %w", err))
	}

	resp, err := u.inference.Generate(ctx, []domain.Turn{
		{Role: domain.RoleUser, Parts: []string{prompt}},
	})
	if err != nil {
		return domain.AnalysisFailed(fmt.Errorf("generate analysis: %w", err))
	}

	text, ok := FirstCandidateText(resp)
	if !ok {
		return domain.EmptyAnalysis()
	}
	return domain.AnalysisOK(text)
}

// FirstCandidateText concatenates the parts of the first candidate.
// ok is false when there is no candidate or it carries no visible text.
func FirstCandidateText(resp *domain.InferenceResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	text := strings.Join(resp.Candidates[0].Parts, "")
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
