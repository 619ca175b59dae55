package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns stdout.
// Global flag values are reset when the test ends.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags() {
	settingsPath = ""
	logLevel = "warn"
	jsonOutput = false
	apiURL = ""
	imageURL = ""
	for _, name := range []string{"note", "vault", "pick"} {
		_ = insertCmd.Flags().Set(name, "")
	}
}

const fakeSearchBody = `{"page":1,"results":[
	{"id":603,"media_type":"movie","title":"The Matrix","release_date":"1999-03-30","overview":"Set in the 22nd century, The Matrix tells the story of a computer hacker.","poster_path":"/matrix.jpg"},
	{"id":6384,"media_type":"person","name":"Keanu Reeves"},
	{"id":63926,"media_type":"tv","name":"The Matrix Files","first_air_date":"2015-01-01","overview":"Behind the scenes.","poster_path":"/files.jpg"}
]}`

// newFakeTMDB serves canned search results and poster bytes.
func newFakeTMDB(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/3/search/multi":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(fakeSearchBody))
		case strings.HasPrefix(r.URL.Path, "/t/p/w500/"):
			_, _ = w.Write([]byte("jpeg"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}
