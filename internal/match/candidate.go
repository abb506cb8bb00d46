package match

import (
	"sort"
)

// minSuggestLen is the shortest token worth a suggestion. Shorter tokens are
// almost always meant as romaji.
const minSuggestLen = 4

// Candidate is a known name close to a token.
type Candidate struct {
	Name     string
	Distance int     // edit distance between the normalized names
	Score    float64 // Similarity of the normalized names
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by distance, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Distance != c[j].Distance {
		return c[i].Distance < c[j].Distance
	}

	return c[i].Name < c[j].Name
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	out := make([]string, len(c))
	for i, cand := range c {
		out[i] = cand.Name
	}

	return out
}

// MaxDistance is the largest edit distance Suggest accepts for a token:
// 1 up to five runes, 2 beyond.
func MaxDistance(token string) int {
	if len([]rune(token)) <= 5 {
		return 1
	}

	return 2
}

// Suggest ranks the names within MaxDistance of token, best first.
// Names equal to token are not suggested, and tokens shorter than four runes
// get no suggestions.
func Suggest(token string, names []string) CandidateList {
	norm := NormalizeKeyName(token)
	if len([]rune(norm)) < minSuggestLen {
		return nil
	}

	limit := MaxDistance(norm)

	var out CandidateList

	for _, name := range names {
		if name == token {
			continue
		}

		nameNorm := NormalizeKeyName(name)

		d := Levenshtein(norm, nameNorm)
		if d > limit {
			continue
		}

		out = append(out, Candidate{
			Name:     name,
			Distance: d,
			Score:    Similarity(norm, nameNorm),
		})
	}

	sort.Sort(out)

	return out
}
