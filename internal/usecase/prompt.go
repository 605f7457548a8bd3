package usecase

import (
	_ "embed"
	"strings"
	"text/template"
	"unicode/utf8"

	"skillmatch-backend/internal/domain"
)

// DefaultResumeMaxChars bounds the resume text embedded in a prompt.
const DefaultResumeMaxChars = 6000

const (
	placeholderDescription    = "No description provided."
	placeholderRequiredSkills = "Not specified"
	placeholderVerifiedSkills = "None"
)

//go:embed templates/analysis_prompt.tmpl
var analysisPromptSource string

var analysisPrompt = template.Must(template.New("analysis").Parse(analysisPromptSource))

// PromptInput holds the already resolved values rendered into the analysis prompt.
type PromptInput struct {
	Type           string
	TypeLabel      string
	Description    string
	RequiredSkills string
	Resume         string
	VerifiedSkills string
}

// NewPromptInput resolves posting and profile fields for the prompt, applying
// placeholders and truncating the resume to maxResumeChars runes.
func NewPromptInput(posting domain.Posting, profile *domain.UserProfile, maxResumeChars int) PromptInput {
	in := PromptInput{
		Type:           string(posting.Type),
		TypeLabel:      strings.ToLower(posting.Type.Label()),
		Description:    placeholderDescription,
		RequiredSkills: placeholderRequiredSkills,
		VerifiedSkills: placeholderVerifiedSkills,
	}
	if d, ok := posting.Description(); ok {
		in.Description = d
	}
	if s, ok := posting.RequiredSkillsText(); ok {
		in.RequiredSkills = s
	}
	if profile != nil {
		in.Resume = TruncateRunes(profile.ResumeText, maxResumeChars)
		if len(profile.Skills) > 0 {
			in.VerifiedSkills = strings.Join(profile.Skills, ", ")
		}
	}
	return in
}

// BuildAnalysisPrompt renders the analysis prompt. It has no side effects.
func BuildAnalysisPrompt(in PromptInput) (string, error) {
	var sb strings.Builder
	if err := analysisPrompt.Execute(&sb, in); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// TruncateRunes cuts s to at most limit runes. limit <= 0 disables the cut.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
