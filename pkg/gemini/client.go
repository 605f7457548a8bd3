package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillmatch-backend/internal/domain"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// ErrNotConfigured is returned by Unconfigured for every request.
var ErrNotConfigured = errors.New("gemini: api key is not configured")

// contentGenerator is the subset of genai.Models used by Client.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client sends generation requests to the Gemini API. The API key travels in
// a request header set by the genai SDK. Requests are not retried.
type Client struct {
	models contentGenerator
	model  string
}

// NewClient creates a Client for the Gemini API backend.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newClient(client.Models, model), nil
}

func newClient(models contentGenerator, model string) *Client {
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}
	return &Client{models: models, model: model}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, turns []domain.Turn) (*domain.InferenceResponse, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, text := range turn.Parts {
			parts = append(parts, &genai.Part{Text: text})
		}
		contents = append(contents, &genai.Content{Role: turn.Role, Parts: parts})
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	return toInferenceResponse(resp), nil
}

// toInferenceResponse keeps candidate order and the text of each part.
// Candidates without content become empty candidates.
func toInferenceResponse(resp *genai.GenerateContentResponse) *domain.InferenceResponse {
	out := &domain.InferenceResponse{}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		var parts []string
		if cand != nil && cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part == nil || part.Thought {
					continue
				}
				parts = append(parts, part.Text)
			}
		}
		out.Candidates = append(out.Candidates, domain.InferenceCandidate{Parts: parts})
	}
	return out
}

// Unconfigured stands in when no API key is set, so analysis requests fail
// with the regular failure text instead of the server refusing to start.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, []domain.Turn) (*domain.InferenceResponse, error) {
	return nil, ErrNotConfigured
}
