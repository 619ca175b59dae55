package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/tmdbnote/internal/tmdb"
)

func strp(s string) *string { return &s }

func TestLabel(t *testing.T) {
	c := tmdb.Candidate{Kind: tmdb.KindMovie, Title: "Fight Club", Date: "1999-10-15"}
	assert.Equal(t, "Fight Club - 1999-10-15", Label(c))
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		overview *string
		n        int
		want     string
	}{
		{"truncates to exact length", strp("A ticking-time-bomb insomniac"), 10, "A ticking-"},
		{"shorter than limit", strp("Short"), 10, "Short"},
		{"counts characters not bytes", strp("一个失眠的上班族遇到了肥皂商"), 4, "一个失眠"},
		{"ignores word boundaries", strp("Hello world"), 7, "Hello w"},
		{"absent overview", nil, 10, ""},
		{"zero length", strp("anything"), 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tmdb.Candidate{Overview: tt.overview}, tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExcerpt_LengthEqualsLimit(t *testing.T) {
	c := tmdb.Candidate{Overview: strp("Set in the 22nd century, The Matrix tells the story of a computer hacker")}
	for _, n := range []int{1, 5, 10, 25} {
		assert.Len(t, []rune(Excerpt(c, n)), n)
	}
}

func TestRender(t *testing.T) {
	rows := Render([]tmdb.Candidate{
		{Kind: tmdb.KindTV, Title: "Dark", Date: "2017-12-01", Overview: strp("A family saga")},
	}, 8)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Dark - 2017-12-01", rows[0].Label)
	assert.Equal(t, "A family", rows[0].Excerpt)
}
