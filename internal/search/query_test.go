package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTextQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "single term", raw: "golang", want: "golang"},
		{name: "two terms", raw: "hello world", want: "hello & world"},
		{name: "extra whitespace", raw: "  hello \t\n world  ", want: "hello & world"},
		{name: "lower case", raw: "Hello WORLD", want: "hello & world"},
		{name: "tsquery operators split terms", raw: "go! (rust) a|b c&d e:*", want: "go & rust & a & b & c & d & e"},
		{name: "operator-only term dropped", raw: "go & rust", want: "go & rust"},
		{name: "unicode letters kept", raw: "привет мир", want: "привет & мир"},
		{name: "hyphenated username", raw: "john-doe", want: "john & doe"},
		{name: "hyphenated word", raw: "e-mail", want: "e & mail"},
		{name: "trailing operators", raw: "c++ rocks", want: "c & rocks"},
		{name: "mixed case hyphenated", raw: "Jean-Luc", want: "jean & luc"},
		{name: "hashtag", raw: "#trending_now", want: "trending_now"},
		{name: "empty", raw: "", want: ""},
		{name: "blank", raw: "   ", want: ""},
		{name: "only operators", raw: "& | !", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, BuildTextQuery(tc.raw))
		})
	}
}
