package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type PostingType string

const (
	PostingInternship PostingType = "internship"
	PostingHackathon  PostingType = "hackathon"
)

// ParsePostingType accepts only the exact lower-case names.
func ParsePostingType(s string) (PostingType, bool) {
	switch PostingType(s) {
	case PostingInternship, PostingHackathon:
		return PostingType(s), true
	}
	return "", false
}

// Collection is the document store collection holding postings of this type.
func (t PostingType) Collection() string {
	switch t {
	case PostingInternship:
		return CollectionInternships
	case PostingHackathon:
		return CollectionHackathons
	}
	return ""
}

// Label is the capitalized display name, e.g. "Internship".
func (t PostingType) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Posting is an internship or hackathon listing. Posting documents come from
// several providers and do not share a schema, so typed values are read
// through the fallback chains below.
type Posting struct {
	ID     string
	Type   PostingType
	Fields Document
}

// MarshalJSON emits the stored fields plus "id".
func (p Posting) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+1)
	for k, v := range p.Fields {
		out[k] = v
	}
	out["id"] = p.ID
	return json.Marshal(out)
}

func PostingsFromDocuments(t PostingType, docs []StoredDocument) []Posting {
	postings := make([]Posting, 0, len(docs))
	for _, d := range docs {
		postings = append(postings, Posting{ID: d.ID, Type: t, Fields: d.Data})
	}
	return postings
}

// fieldAccessor reads one candidate field; ok is false when it is absent or empty.
type fieldAccessor func(Document) (any, bool)

func field(name string) fieldAccessor {
	return func(d Document) (any, bool) {
		v, ok := d[name]
		if !ok || isEmptyValue(v) {
			return nil, false
		}
		return v, true
	}
}

// Field fallback chains, tried in order. The first populated field wins.
var (
	titleChain = []fieldAccessor{
		field("title"),
		field("name"),
	}
	descriptionChain = []fieldAccessor{
		field("description"),
		field("Description"),
		field("desc"),
		field("about"),
	}
	requiredSkillsChain = []fieldAccessor{
		field("skillsRequired"),
		field("requiredSkills"),
		field("skills"),
		field("domains"),
		field("themes"),
	}
)

func firstPopulated(d Document, chain []fieldAccessor) (any, bool) {
	for _, get := range chain {
		if v, ok := get(d); ok {
			return v, true
		}
	}
	return nil, false
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	}
	return false
}

func asText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Title returns "title", falling back to "name".
func (p Posting) Title() string {
	v, ok := firstPopulated(p.Fields, titleChain)
	if !ok {
		return ""
	}
	return asText(v)
}

// Description returns the first populated description field.
func (p Posting) Description() (string, bool) {
	v, ok := firstPopulated(p.Fields, descriptionChain)
	if !ok {
		return "", false
	}
	return asText(v), true
}

// RequiredSkills returns the required-skill list used for scoring. A chosen
// field that is not an array counts as an empty list.
func (p Posting) RequiredSkills() []string {
	v, ok := firstPopulated(p.Fields, requiredSkillsChain)
	if !ok {
		return []string{}
	}
	skills, ok := stringList(v)
	if !ok {
		return []string{}
	}
	return skills
}

// RequiredSkillsText renders the required skills for display: arrays are
// joined with ", " and plain strings are returned verbatim.
func (p Posting) RequiredSkillsText() (string, bool) {
	v, ok := firstPopulated(p.Fields, requiredSkillsChain)
	if !ok {
		return "", false
	}
	if skills, isList := stringList(v); isList {
		if len(skills) == 0 {
			return "", false
		}
		return strings.Join(skills, ", "), true
	}
	return asText(v), true
}

type PostingUsecase interface {
	List(ctx context.Context, t PostingType) ([]Posting, error)
	// ListAll returns hackathons followed by internships.
	ListAll(ctx context.Context) ([]Posting, error)
}
