package compose

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/vmunix/tmdbnote/internal/tmdb"
)

var (
	// ErrNoPoster is returned when composing a candidate without a poster path.
	ErrNoPoster = errors.New("candidate has no poster path")

	// ErrNoOverview is returned when composing a candidate without an overview.
	ErrNoOverview = errors.New("candidate has no overview")
)

// entryTemplate is the frontmatter block prepended to the note. The blank
// first line and the spaces after the closing fence are part of the format.
var entryTemplate = template.Must(template.New("entry").Parse(`
---
title: {{.Title}}
date: {{.Created}}
tags:
year: {{.Year}}
type: {{.Type}}
status: 
ep: 
cover: "![[{{.Cover}}|80]]"
summary: {{.Summary}}
---    
`))

type entryFields struct {
	Title   string
	Created string
	Year    string
	Type    string
	Cover   string
	Summary string
}

// FormatDate renders t as Y-M-D without zero padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// CoverRef returns the poster path without its leading separator.
func CoverRef(posterPath string) string {
	_, size := utf8.DecodeRuneInString(posterPath)
	return posterPath[size:]
}

// BuildEntry renders the frontmatter block for c. created is the wall-clock
// time of composition; the candidate's own date goes under year.
func BuildEntry(c tmdb.Candidate, created time.Time) (string, error) {
	if !c.HasPoster() {
		return "", ErrNoPoster
	}
	if c.Overview == nil {
		return "", ErrNoOverview
	}

	fields := entryFields{
		Title:   c.Title,
		Created: FormatDate(created),
		Year:    c.Date,
		Type:    string(c.Kind),
		Cover:   CoverRef(*c.PosterPath),
		Summary: strings.ReplaceAll(*c.Overview, "\n", ""),
	}

	var b strings.Builder
	if err := entryTemplate.Execute(&b, fields); err != nil {
		return "", fmt.Errorf("render entry: %w", err)
	}
	return b.String(), nil
}
