package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"escpe", "escape", 1},
		{"hyphn", "hyphen", 1},
		{"ABC", "abc", 3},
		// runes, not bytes
		{"かな", "かに", 1},
		{"", "かな", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("tab", "tab"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 5.0/6.0, Similarity("escpe", "escape"), 1e-9)
}

func TestNormalizeKeyName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pageup", NormalizeKeyName("page_up"))
	assert.Equal(t, "pageup", NormalizeKeyName("Page-Up"))
	assert.Equal(t, "returnorenter", NormalizeKeyName("return or enter"))
	assert.Equal(t, "", NormalizeKeyName("_-"))
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	names := []string{"escape", "page_up", "page_down", "period", "hyphen", "home", "end", "tab"}

	assert.Equal(t, []string{"escape"}, Suggest("escpe", names).Names())
	assert.Equal(t, []string{"page_up"}, Suggest("pageup", names).Names())
	assert.Equal(t, []string{"page_down"}, Suggest("pagedwn", names).Names())
	assert.Equal(t, []string{"hyphen"}, Suggest("hyphn", names).Names())

	assert.Equal(t, []string{"tab"}, Suggest("tabb", []string{"tab", "home"}).Names())

	// too short, too far, or already known
	assert.Empty(t, Suggest("ka", names))
	assert.Empty(t, Suggest("konnichiha", names))
	assert.Empty(t, Suggest("escape", []string{"escape"}))

	got := Suggest("hone", []string{"none", "home", "hole"})
	assert.Equal(t, []string{"hole", "home", "none"}, got.Names())
	assert.Equal(t, 1, got[0].Distance)
	assert.InDelta(t, 0.75, got[0].Score, 1e-9)
}
