// Package xregexp provides combinators to compose regexp expressions from
// readable fragments.
package xregexp

import (
	"regexp"
	"strings"
)

// Literal escapes any regexp reserved characters in s so it matches
// literally.
func Literal(s string) string {
	return regexp.QuoteMeta(s)
}

// Expression joins the fragments into a single expression where each part
// must follow the previous.
func Expression(res ...string) string {
	return strings.Join(res, "")
}

// Optional wraps the expression in a non-capturing group and makes the
// production optional.
func Optional(res ...string) string {
	return Group(Expression(res...)) + `?`
}

// Repeated wraps the expression in a non-capturing group matched one or
// more times.
func Repeated(res ...string) string {
	return Group(Expression(res...)) + `+`
}

// Any wraps the expression in a non-capturing group matched zero or more
// times.
func Any(res ...string) string {
	return Group(Expression(res...)) + `*`
}

// Group wraps the expression in a non-capturing group.
func Group(res ...string) string {
	return `(?:` + Expression(res...) + `)`
}

// Capture wraps the expression in a capturing group.
func Capture(res ...string) string {
	return `(` + Expression(res...) + `)`
}

// Anchored anchors the expression at the start and end of the matched
// string.
func Anchored(res ...string) string {
	return `^` + Expression(res...) + `$`
}
