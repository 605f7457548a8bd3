package skill

import "strings"

// DefaultVocabulary is the list of skills recognized in resume text.
var DefaultVocabulary = []string{
	"JavaScript",
	"Python",
	"Java",
	"C++",
	"React",
	"Node.js",
	"Express",
	"MongoDB",
	"SQL",
	"Docker",
	"AWS",
	"Git",
}

// Extractor detects vocabulary skills in free text.
//
// Matching is a case-insensitive substring test with no word boundaries, so
// "Java" is reported for "JavaScript", "SQL" for "PostgreSQL" and "Git" for
// "GitHub".
type Extractor struct {
	vocabulary []string
	needles    []string
}

// NewExtractor builds an extractor for the given vocabulary. Blank entries and
// entries that normalize to an earlier one are dropped. An empty vocabulary
// falls back to DefaultVocabulary.
func NewExtractor(vocabulary []string) *Extractor {
	e := &Extractor{}
	seen := make(map[string]struct{}, len(vocabulary))
	for _, name := range vocabulary {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := Normalize(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		e.vocabulary = append(e.vocabulary, name)
		e.needles = append(e.needles, strings.ToLower(name))
	}
	if len(e.vocabulary) == 0 {
		return NewExtractor(DefaultVocabulary)
	}
	return e
}

func (e *Extractor) Vocabulary() []string {
	return append([]string(nil), e.vocabulary...)
}

// Extract returns the vocabulary entries present in text, in vocabulary order.
func (e *Extractor) Extract(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}
	haystack := strings.ToLower(text)
	for i, needle := range e.needles {
		if strings.Contains(haystack, needle) {
			found = append(found, e.vocabulary[i])
		}
	}
	return found
}
