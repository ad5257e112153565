package substr

import (
	"errors"

	"github.com/coregx/substr/kmp"
)

// Errors reported by the splitting API, plus the kmp package's compile and
// search sentinels re-exported so callers can match every failure mode of
// the library with a single import.
//
// "Separator not found" is ordinarily reported with ok=false, never as an
// error; only CutLastStrict turns absence into ErrNotFound.
var (
	// ErrEmptySeparator indicates an empty separator was supplied to a
	// splitting function.
	ErrEmptySeparator = errors.New("substr: empty separator")

	// ErrNotFound indicates the separator does not occur in the haystack.
	// Only returned by the strict splitting variants.
	ErrNotFound = errors.New("substr: separator not found")

	// ErrEmptyPattern is kmp.ErrEmptyPattern.
	ErrEmptyPattern = kmp.ErrEmptyPattern

	// ErrInvalidIndex is kmp.ErrInvalidIndex.
	ErrInvalidIndex = kmp.ErrInvalidIndex
)
