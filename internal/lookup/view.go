package lookup

import "github.com/vmunix/tmdbnote/internal/tmdb"

// Suggestion is one rendered row of the selection list.
type Suggestion struct {
	Candidate tmdb.Candidate
	Label     string // "<name> - <date>"
	Excerpt   string
}

// Label returns the one-line label of a candidate.
func Label(c tmdb.Candidate) string {
	return c.Title + " - " + c.Date
}

// Excerpt returns the first n characters of the overview.
// Truncation counts runes and ignores word boundaries.
func Excerpt(c tmdb.Candidate, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(c.OverviewText())
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n])
}

// Render maps candidates to list rows.
func Render(candidates []tmdb.Candidate, excerptLength int) []Suggestion {
	out := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		out[i] = Suggestion{
			Candidate: c,
			Label:     Label(c),
			Excerpt:   Excerpt(c, excerptLength),
		}
	}
	return out
}
