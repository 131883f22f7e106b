package matcher

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinSuggestScore is the lowest similarity worth reporting as a near miss.
const MinSuggestScore = 0.70

// Suggest returns the candidate most similar to name and its Jaro-Winkler
// score. It only feeds log output and never affects Match. An empty title is
// returned when nothing scores at least MinSuggestScore.
func Suggest(name string, candidates []string) (string, float64) {
	folded := fold(name)

	var best string
	var bestScore float64
	for _, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(folded, fold(c)))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSuggestScore {
		return "", bestScore
	}
	return best, bestScore
}

// fold lower-cases s and strips diacritics so "Pokémon" and "pokemon" compare
// equal for scoring.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(strings.TrimSpace(result))
}
