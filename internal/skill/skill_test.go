package skill_test

import (
	"testing"

	"skillmatch-backend/internal/skill"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Should ignore case and separators", func(t *testing.T) {
		assert.Equal(t, "nodejs", skill.Normalize("Node.js"))
		assert.Equal(t, skill.Normalize("Node.js"), skill.Normalize("node js"))
		assert.Equal(t, skill.Normalize("Node.js"), skill.Normalize("NODE-JS"))
		assert.Equal(t, "c++", skill.Normalize(" C++ "))
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		for _, in := range []string{"Node.js", "  Machine-Learning ", "C++", "", "ÄWS\tCloud"} {
			once := skill.Normalize(in)
			assert.Equal(t, once, skill.Normalize(once), in)
		}
	})

	t.Run("Should strip unicode whitespace", func(t *testing.T) {
		assert.Equal(t, "mongodb", skill.Normalize("Mongo\u00a0DB"))
	})
}

func TestExtractor(t *testing.T) {
	ex := skill.NewExtractor(nil)

	t.Run("Should find skills case-insensitively", func(t *testing.T) {
		got := ex.Extract("I used Node.js and Python for the backend")
		assert.Contains(t, got, "Node.js")
		assert.Contains(t, got, "Python")
		assert.NotContains(t, got, "Docker")
	})

	t.Run("Should return empty set for empty text", func(t *testing.T) {
		got := ex.Extract("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should keep substring behaviour", func(t *testing.T) {
		got := ex.Extract("Frontend work in JavaScript, data in PostgreSQL, code on GitHub")
		assert.Equal(t, []string{"JavaScript", "Java", "SQL", "Git"}, got)
	})

	t.Run("Should report each skill once in vocabulary order", func(t *testing.T) {
		got := ex.Extract("docker DOCKER aws Docker python")
		assert.Equal(t, []string{"Python", "Docker", "AWS"}, got)
	})

	t.Run("Should use custom vocabulary without blanks or duplicates", func(t *testing.T) {
		custom := skill.NewExtractor([]string{"Go", " ", "Kubernetes", "go", "Node.js", "nodejs"})
		assert.Equal(t, []string{"Go", "Kubernetes", "Node.js"}, custom.Vocabulary())
		assert.Equal(t, []string{"Go", "Kubernetes"}, custom.Extract("Golang services on Kubernetes"))
	})

	t.Run("Should fall back to default vocabulary", func(t *testing.T) {
		assert.Equal(t, skill.DefaultVocabulary, skill.NewExtractor([]string{"", "  "}).Vocabulary())
	})
}

func TestNormalizedSet(t *testing.T) {
	set := skill.NormalizedSet([]string{"Node.js", "node js", "Python"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "nodejs")
	assert.Contains(t, set, "python")
}
