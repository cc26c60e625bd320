// Package internal holds the identifier grammar as composable regexp
// fragments.
package internal

import (
	"regexp"

	"github.com/wuxler/dbident/pkg/util/xregexp"
)

var (
	// re compiles the string to a regular expression.
	re         = regexp.MustCompile
	expression = xregexp.Expression
	zeroOrMore = xregexp.Any
	anchored   = xregexp.Anchored
)

const (
	// firstChar restricts the leading character of an identifier. It is
	// the full alphabet minus digits and space.
	firstChar = `[a-zA-Z_]`

	// restChar defines the characters allowed anywhere after the leading
	// position. Uppercase letters are accepted in raw input and folded to
	// lowercase during normalization.
	restChar = `[a-zA-Z0-9_ ]`
)

var (
	// identifierPat matches a well-formed raw identifier before case
	// folding.
	//
	// Format: first-char rest-char*
	identifierPat = expression(firstChar, zeroOrMore(restChar))

	// IdentifierRegexp matches well-formed raw identifiers.
	IdentifierRegexp = re(identifierPat)

	// AnchoredIdentifierRegexp is used to check or match an identifier
	// value, anchored at start and end of string.
	AnchoredIdentifierRegexp = re(anchored(identifierPat))
)
