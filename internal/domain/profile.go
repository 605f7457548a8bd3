package domain

import "context"

// Field names of a user document.
const (
	FieldResumeText      = "resumeText"
	FieldSkills          = "skills"
	FieldResumeUpdatedAt = "resumeUpdatedAt"
)

type UserProfile struct {
	ID              string   `json:"id"`
	ResumeText      string   `json:"resumeText"`
	Skills          []string `json:"skills"`
	ResumeUpdatedAt int64    `json:"resumeUpdatedAt"` // unix millis
}

// ProfileFromDocument decodes a user document. Missing or mistyped fields stay zero.
func ProfileFromDocument(id string, doc Document) *UserProfile {
	profile := &UserProfile{ID: id, Skills: []string{}}
	if text, ok := doc.Text(FieldResumeText); ok {
		profile.ResumeText = text
	}
	if skills, ok := doc.StringList(FieldSkills); ok {
		profile.Skills = skills
	}
	switch ts := doc[FieldResumeUpdatedAt].(type) {
	case int64:
		profile.ResumeUpdatedAt = ts
	case int:
		profile.ResumeUpdatedAt = int64(ts)
	case float64:
		profile.ResumeUpdatedAt = int64(ts)
	}
	return profile
}

// ResumeFile is an uploaded resume as received from the client.
type ResumeFile struct {
	Filename    string
	ContentType string // detected from content, not taken from the client
	Data        []byte
}

// TextExtractor turns a PDF document into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// ResumeArchive keeps the raw uploaded file in object storage.
type ResumeArchive interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

type ResumeUsecase interface {
	// Upload stores the resume text and merges the detected skills into the
	// user's profile. It returns the skills found in this resume.
	Upload(ctx context.Context, userID string, file ResumeFile) ([]string, error)
}

// IdentityVerifier resolves a bearer token to a user id.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
