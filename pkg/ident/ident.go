package ident

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier is the canonical, validated name of a database object. The
// zero value is not a valid identifier; use New to construct one.
//
// Identifiers are immutable, comparable with ==, and usable as map keys.
// They are safe to share across goroutines.
type Identifier struct {
	value string
}

// New validates raw against the identifier naming rules and, when valid,
// returns the Identifier holding its canonical lower-cased form. The
// returned error wraps ErrBadName.
func New(raw string, opts ...Option) (Identifier, error) {
	var zero Identifier
	if err := validate(raw, makeOptions(opts...)); err != nil {
		return zero, fmt.Errorf("invalid identifier %q: %w", raw, err)
	}
	return Identifier{value: fold(raw)}, nil
}

// MustNew wraps New with error panic.
func MustNew(raw string, opts ...Option) Identifier {
	id, err := New(raw, opts...)
	if err != nil {
		panic(err)
	}
	return id
}

// Normalize returns the canonical form of raw without the wrapper type.
func Normalize(raw string, opts ...Option) (string, error) {
	id, err := New(raw, opts...)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// String returns the canonical text exactly, with no quoting or
// decoration.
func (id Identifier) String() string {
	return id.value
}

// GoString returns the canonical text in a quoted diagnostic form. It
// makes %#v output readable in test failure messages.
func (id Identifier) GoString() string {
	return strconv.Quote(id.value)
}

// IsZero reports whether id is the zero value rather than a constructed
// identifier.
func (id Identifier) IsZero() bool {
	return id.value == ""
}

// Equal reports whether id and other hold the same canonical text. It is
// equivalent to comparing with ==.
func (id Identifier) Equal(other Identifier) bool {
	return id.value == other.value
}

// Compare orders identifiers lexically by their canonical text. It returns
// -1, 0 or +1 like strings.Compare.
func (id Identifier) Compare(other Identifier) int {
	return strings.Compare(id.value, other.value)
}

// MarshalText implements encoding.TextMarshaler with the canonical text.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// validated and folded exactly like New.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// fold maps ASCII uppercase letters to lowercase. Validation has already
// confirmed the input holds only allowed ASCII characters, so nothing else
// is touched.
func fold(raw string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, raw)
}
