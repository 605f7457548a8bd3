package gemini

import (
	"context"
	"net/http"
	"testing"

	"skillmatch-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	calls    int
	model    string
	contents []*genai.Content
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func TestGenerateMapsTurnsAndCandidates(t *testing.T) {
	fake := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "Hello "}, {Text: "thinking", Thought: true}, {Text: "world"}}}},
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "second"}}}},
			{},
		},
	}}
	client := newClient(fake, "")

	resp, err := client.Generate(context.Background(), []domain.Turn{{Role: domain.RoleUser, Parts: []string{"prompt"}}})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, DefaultModel, fake.model)
	require.Len(t, fake.contents, 1)
	assert.Equal(t, "user", fake.contents[0].Role)
	assert.Equal(t, "prompt", fake.contents[0].Parts[0].Text)

	require.Len(t, resp.Candidates, 3)
	assert.Equal(t, []string{"Hello ", "world"}, resp.Candidates[0].Parts)
	assert.Equal(t, []string{"second"}, resp.Candidates[1].Parts)
	assert.Empty(t, resp.Candidates[2].Parts)
}

func TestGenerateDoesNotRetry(t *testing.T) {
	fake := &fakeModels{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}}
	client := newClient(fake, "gemini-test")

	_, err := client.Generate(context.Background(), []domain.Turn{{Role: domain.RoleUser, Parts: []string{"p"}}})
	assert.Error(t, err)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "gemini-test", client.Model())
}

func TestGenerateHandlesNilResponse(t *testing.T) {
	client := newClient(&fakeModels{}, "m")
	resp, err := client.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Candidates)
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Unconfigured{}.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
