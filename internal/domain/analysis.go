package domain

import (
	"context"
)

// Fixed texts returned to the caller when an analysis cannot be produced.
const (
	MsgProfileNotFound = "User profile not found. Please upload your resume first."
	MsgInvalidType     = `Invalid analysis type. Use "internship" or "hackathon".`
	MsgNoAnalysis      = "No analysis returned by the model."
	MsgAnalysisFailed  = "Analysis failed. Please try again later."
)

type AnalysisRequest struct {
	UserID    string
	PostingID string
	Type      string
}

type AnalysisKind string

const (
	AnalysisKindOK              AnalysisKind = "ok"
	AnalysisKindProfileNotFound AnalysisKind = "profile_not_found"
	AnalysisKindInvalidType     AnalysisKind = "invalid_type"
	AnalysisKindPostingNotFound AnalysisKind = "posting_not_found"
	AnalysisKindEmptyResponse   AnalysisKind = "empty_response"
	AnalysisKindFailed          AnalysisKind = "failed"
)

// AnalysisResult is the typed outcome of one analysis. Text always holds what
// the end user should see; Err carries the cause for failed results.
type AnalysisResult struct {
	Kind AnalysisKind
	Text string
	Err  error
}

func (r AnalysisResult) OK() bool {
	return r.Kind == AnalysisKindOK
}

// Message flattens the result to the text shown to the user.
func (r AnalysisResult) Message() string {
	return r.Text
}

func AnalysisOK(text string) AnalysisResult {
	return AnalysisResult{Kind: AnalysisKindOK, Text: text}
}

func ProfileNotFound() AnalysisResult {
	return AnalysisResult{Kind: AnalysisKindProfileNotFound, Text: MsgProfileNotFound}
}

func InvalidAnalysisType() AnalysisResult {
	return AnalysisResult{Kind: AnalysisKindInvalidType, Text: MsgInvalidType}
}

func PostingNotFound(t PostingType) AnalysisResult {
	return AnalysisResult{Kind: AnalysisKindPostingNotFound, Text: t.Label() + " not found."}
}

func EmptyAnalysis() AnalysisResult {
	return AnalysisResult{Kind: AnalysisKindEmptyResponse, Text: MsgNoAnalysis}
}

func AnalysisFailed(err error) AnalysisResult {
	return AnalysisResult{Kind: AnalysisKindFailed, Text: MsgAnalysisFailed, Err: err}
}

type AnalysisUsecase interface {
	// Analyze always returns user-facing text, never an error.
	Analyze(ctx context.Context, req AnalysisRequest) string
	Evaluate(ctx context.Context, req AnalysisRequest) AnalysisResult
}

// RoleUser marks a turn written by the caller.
const RoleUser = "user"

// Turn is one message of an inference request.
type Turn struct {
	Role  string
	Parts []string
}

type InferenceCandidate struct {
	Parts []string
}

type InferenceResponse struct {
	Candidates []InferenceCandidate
}

// InferenceClient sends a single generation request to the text model.
type InferenceClient interface {
	Generate(ctx context.Context, turns []Turn) (*InferenceResponse, error)
}
