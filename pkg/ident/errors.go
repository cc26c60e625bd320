package ident

import (
	"errors"
)

var (
	// ErrBadName is an error for when a bad name is supplied.
	ErrBadName = errors.New("bad name")
)
