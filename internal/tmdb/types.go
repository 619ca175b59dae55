// Package tmdb provides a client for The Movie Database API.
package tmdb

// Kind is the media type discriminator of a search result.
type Kind string

const (
	KindTV    Kind = "tv"
	KindMovie Kind = "movie"
)

// RawResult is one loosely typed record of a multi-search response.
// Every field may be missing; movies carry title/release_date,
// tv entries carry name/first_air_date.
type RawResult struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        *string `json:"title,omitempty"`
	Name         *string `json:"name,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"` // "1999-10-15"
	FirstAirDate *string `json:"first_air_date,omitempty"`
	Overview     *string `json:"overview,omitempty"`
	PosterPath   *string `json:"poster_path,omitempty"` // "/abc123.jpg"
}

// Candidate is a tv or movie search result after normalization.
type Candidate struct {
	ID         int64
	Kind       Kind
	Title      string  // title for movies, name for tv
	Date       string  // release_date, else first_air_date
	Overview   *string // nil when the API omitted it
	PosterPath *string // nil when there is no poster
}

// Normalize converts a raw record into a Candidate.
// It returns false for media types other than tv and movie.
func Normalize(r RawResult) (Candidate, bool) {
	kind := Kind(r.MediaType)
	if kind != KindTV && kind != KindMovie {
		return Candidate{}, false
	}

	c := Candidate{
		ID:       r.ID,
		Kind:     kind,
		Title:    firstNonEmpty(r.Title, r.Name),
		Date:     firstNonEmpty(r.ReleaseDate, r.FirstAirDate),
		Overview: r.Overview,
	}
	if r.PosterPath != nil && *r.PosterPath != "" {
		p := *r.PosterPath
		c.PosterPath = &p
	}
	return c, true
}

// HasPoster reports whether the candidate has a poster image.
func (c Candidate) HasPoster() bool {
	return c.PosterPath != nil
}

// OverviewText returns the overview, or "" when absent.
func (c Candidate) OverviewText() string {
	if c.Overview == nil {
		return ""
	}
	return *c.Overview
}

func firstNonEmpty(vals ...*string) string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
