package xregexp_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/dbident/pkg/util/xregexp"
)

func TestOperators(t *testing.T) {
	testcases := map[string]struct {
		pattern string
		match   []string
		nomatch []string
	}{
		"literal": {
			pattern: xregexp.Anchored(xregexp.Literal("a.b")),
			match:   []string{"a.b"},
			nomatch: []string{"axb"},
		},
		"optional": {
			pattern: xregexp.Anchored(`a`, xregexp.Optional(`b`)),
			match:   []string{"a", "ab"},
			nomatch: []string{"abb", "b"},
		},
		"repeated": {
			pattern: xregexp.Anchored(xregexp.Repeated(`ab`)),
			match:   []string{"ab", "abab"},
			nomatch: []string{"", "a"},
		},
		"any": {
			pattern: xregexp.Anchored(`a`, xregexp.Any(`[b-z]`)),
			match:   []string{"a", "abc"},
			nomatch: []string{"a1"},
		},
		"group": {
			pattern: xregexp.Anchored(xregexp.Group(`a|b`), `c`),
			match:   []string{"ac", "bc"},
			nomatch: []string{"abc"},
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			re := regexp.MustCompile(tc.pattern)
			for _, s := range tc.match {
				assert.True(t, re.MatchString(s), "expected %q to match %s", s, tc.pattern)
			}
			for _, s := range tc.nomatch {
				assert.False(t, re.MatchString(s), "expected %q to not match %s", s, tc.pattern)
			}
		})
	}
}

func TestCapture(t *testing.T) {
	re := regexp.MustCompile(xregexp.Anchored(
		xregexp.Capture(`[a-z]+`),
		xregexp.Literal(`:`),
		xregexp.Capture(`[0-9]+`),
	))
	matches := re.FindStringSubmatch("abc:42")
	assert.Equal(t, []string{"abc:42", "abc", "42"}, matches)
}
