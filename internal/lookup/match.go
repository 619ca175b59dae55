package lookup

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/tmdbnote/internal/tmdb"
)

// Match is the candidate closest to a query.
type Match struct {
	Index     int
	Candidate tmdb.Candidate
	Score     float64 // Jaro-Winkler similarity (0.0-1.0)
}

// BestMatch picks the candidate whose title is most similar to query.
// Ties keep the earlier candidate, so API order breaks them.
func BestMatch(query string, candidates []tmdb.Candidate) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}

	q := foldTitle(query)
	best := Match{Index: -1, Score: -1}
	for i, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(q, foldTitle(c.Title)))
		if score > best.Score {
			best = Match{Index: i, Candidate: c, Score: score}
		}
	}
	return best, true
}

// foldTitle lower-cases, strips accents and collapses whitespace.
func foldTitle(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}
