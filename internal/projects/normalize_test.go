package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain name untouched", "MyProject", "MyProject"},
		{"leading and trailing spaces trimmed", "  MyProject  ", "MyProject"},
		{"interior run collapses to one underscore", "  my   project  ", "my_project"},
		{"single spaces become underscores", "my new project", "my_new_project"},
		{"tabs and newlines count as whitespace", "my\tnew\nproject", "my_new_project"},
		{"mixed run is one underscore", "my \t \n project", "my_project"},
		{"non-breaking space is whitespace", "my project", "my_project"},
		{"empty input", "", ""},
		{"whitespace-only input", " \t\n ", ""},
		{"already normalized is a fixed point", "my_project", "my_project"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeName(tc.in))
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"  my   project  ", "a b\tc", "one", " \n "}
	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once), "normalizing %q twice changed the result", in)
	}
}
