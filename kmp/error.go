package kmp

import "errors"

// Errors reported by pattern compilation and searching.
//
// Absence of a match is never an error: searches report it with a -1
// offset (or iterator exhaustion). Only invalid caller input is reported
// through these sentinels, and a failing call performs no scanning work.
var (
	// ErrEmptyPattern indicates an empty pattern was supplied to Compile.
	// Callers that want "empty pattern matches everywhere" semantics must
	// special-case before compiling.
	ErrEmptyPattern = errors.New("kmp: empty pattern")

	// ErrInvalidIndex indicates a search cursor outside [0, len(haystack)].
	ErrInvalidIndex = errors.New("kmp: search index out of range")
)
