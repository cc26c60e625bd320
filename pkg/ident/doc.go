// Package ident provides a validated, normalized name type for database
// objects. Table names, column names and constraint names are identifiers.
//
// # Grammar
//
//	identifier      := first-char rest-char*
//	first-char      := /[a-zA-Z_]/
//	rest-char       := /[a-zA-Z0-9_ ]/
//
// Space is allowed because SQL permits it inside quoted identifiers, but a
// name can never start with a space or a digit.
//
// Identifiers are case insensitive. Construction folds ASCII uppercase
// letters to lowercase and stores only that canonical form, so two
// spellings of the same name compare and hash identically. Folding is
// ASCII-only: the allowed alphabet is ASCII-restricted, so no locale or
// Unicode case semantics apply.
package ident
