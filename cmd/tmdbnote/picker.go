package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmunix/tmdbnote/internal/lookup"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

// promptPicker is the interactive selection list. Every entered line is a
// new search; a number picks from the current list. Prefix a line with "/"
// to search for a number.
type promptPicker struct {
	in      io.Reader
	out     io.Writer
	initial string
}

func (p *promptPicker) Pick(ctx context.Context, sess *lookup.Session) (tmdb.Candidate, bool, error) {
	scanner := bufio.NewScanner(p.in)

	query := p.initial
	if query != "" {
		if err := p.search(sess, query); err != nil {
			return tmdb.Candidate{}, false, err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return tmdb.Candidate{}, false, err
		}

		rows := sess.Suggestions()
		if len(rows) > 0 {
			fmt.Fprintf(p.out, "\nPick [1-%d], search again, or empty to cancel: ", len(rows))
		} else {
			fmt.Fprint(p.out, "Search: ")
		}

		if !scanner.Scan() {
			return tmdb.Candidate{}, false, scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			return tmdb.Candidate{}, false, nil
		case strings.HasPrefix(input, "/"):
			query = strings.TrimPrefix(input, "/")
		default:
			if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(rows) {
				return rows[n-1].Candidate, true, nil
			}
			query = input
		}

		if err := p.search(sess, query); err != nil {
			return tmdb.Candidate{}, false, err
		}
	}
}

func (p *promptPicker) search(sess *lookup.Session, query string) error {
	sess.Input(query)
	if err := sess.Wait(); err != nil {
		return err
	}
	printSuggestions(p.out, query, sess.Suggestions())
	return nil
}
