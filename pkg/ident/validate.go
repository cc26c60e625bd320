package ident

import (
	"unicode/utf8"

	"github.com/wuxler/dbident/pkg/errdefs"
	"github.com/wuxler/dbident/pkg/ident/internal"
)

// Validate checks whether raw conforms to the identifier naming rules. It
// does not fold case. All returned errors wrap ErrBadName.
func Validate(raw string, opts ...Option) error {
	return validate(raw, makeOptions(opts...))
}

// IsValid reports whether raw would be accepted by New with default
// options.
func IsValid(raw string) bool {
	return internal.AnchoredIdentifierRegexp.MatchString(raw)
}

func validate(raw string, o options) error {
	if raw == "" {
		return errdefs.Newf(ErrBadName, "non-empty name is required")
	}
	if o.maxLength > 0 && len(raw) > o.maxLength {
		return errdefs.Newf(ErrBadName, "name exceeds maximum length %d", o.maxLength)
	}
	if internal.AnchoredIdentifierRegexp.MatchString(raw) {
		return nil
	}
	return diagnose(raw)
}

// diagnose reports which rule a rejected name broke. The anchored regexp is
// the source of truth for validity; this scan only exists to produce a
// useful message.
func diagnose(raw string) error {
	first, _ := utf8.DecodeRuneInString(raw)
	switch {
	case first >= '0' && first <= '9':
		return errdefs.Newf(ErrBadName, "name cannot start with a digit")
	case first == ' ':
		return errdefs.Newf(ErrBadName, "name cannot start with a space")
	}
	for i, r := range raw {
		if !allowed(r) {
			return errdefs.Newf(ErrBadName, "disallowed character %q at position %d", r, i)
		}
	}
	return errdefs.Newf(ErrBadName, "name does not match %s", internal.AnchoredIdentifierRegexp)
}

// allowed reports whether r belongs to the identifier alphabet.
func allowed(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z',
		'A' <= r && r <= 'Z',
		'0' <= r && r <= '9',
		r == '_', r == ' ':
		return true
	}
	return false
}
