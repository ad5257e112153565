// Package substr provides precompiled literal-substring search together
// with the splitting and edit-distance operations built on it.
//
// The engine compiles a pattern once into an immutable value carrying a
// KMP failure table, then reuses it for any number of forward or reverse
// searches with a guaranteed O(len(pattern) + len(haystack)) comparison
// bound. Splitting is layered on the same search contract, and the
// editdist subpackage supplies Levenshtein distance.
//
// Basic usage:
//
//	// Compile a pattern
//	p, err := substr.Compile("bc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find the leftmost occurrence
//	at := p.Find([]byte("abcd"))
//	fmt.Println(at) // 1
//
//	// Every occurrence, overlapping
//	offsets := p.FindAll([]byte("_bc_bc_"))
//	// offsets = [1, 4]
//
// Splitting:
//
//	parts, _ := substr.SplitStrings("aa,bb,cc", ",")
//	// parts = ["aa", "bb", "cc"]
//
// Searches never mutate the haystack, and compiled patterns are safe to
// share across goroutines.
package substr

import (
	"github.com/coregx/substr/kmp"
)

// Direction is re-exported from the kmp package; patterns are compiled
// for exactly one direction, fixed at construction.
type Direction = kmp.Direction

// Compile-time search directions.
const (
	Forward = kmp.Forward
	Reverse = kmp.Reverse
)

// Pattern is a compiled substring pattern.
//
// A Pattern is immutable and safe for concurrent use by multiple
// goroutines.
//
// Example:
//
//	p := substr.MustCompile("needle")
//	if p.Find(haystack) >= 0 {
//	    println("found!")
//	}
type Pattern struct {
	engine  *kmp.Pattern
	pattern string
}

// Compile compiles pattern for forward (left-to-right) search.
//
// Returns ErrEmptyPattern if pattern is empty; callers wanting "empty
// pattern matches everywhere" semantics must handle that case themselves
// before compiling.
//
// Example:
//
//	p, err := substr.Compile("::")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return compile(pattern, kmp.Forward)
}

// CompileReverse compiles pattern for reverse (right-to-left) search:
// FindAt interprets its start argument as a right boundary and reports
// the rightmost occurrence lying wholly before it.
//
// Example:
//
//	p, err := substr.CompileReverse("/")
//	at, _ := p.FindAt([]byte("a/b/c"), 5)
//	// at == 3
func CompileReverse(pattern string) (*Pattern, error) {
	return compile(pattern, kmp.Reverse)
}

func compile(pattern string, dir kmp.Direction) (*Pattern, error) {
	engine, err := kmp.Compile([]byte(pattern), dir)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile is like Compile but panics on error.
//
// This is useful for patterns known to be valid at compile time:
//
//	var sep = substr.MustCompile("\r\n")
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("substr: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return p
}

// MustCompileReverse is like CompileReverse but panics on error.
func MustCompileReverse(pattern string) *Pattern {
	p, err := CompileReverse(pattern)
	if err != nil {
		panic("substr: CompileReverse(" + quote(pattern) + "): " + err.Error())
	}
	return p
}

// quote wraps a pattern in backquotes for panic messages, mirroring the
// style of stdlib regexp.MustCompile.
func quote(pattern string) string {
	return "`" + pattern + "`"
}

// FindAt returns the offset of the next occurrence of the pattern in
// haystack relative to start, or -1 if there is none. Absence is a normal
// outcome, not an error.
//
// For forward patterns start is a left boundary; for reverse patterns it
// is a right boundary and only occurrences wholly within haystack[:start]
// are considered. Returns ErrInvalidIndex if start is outside
// [0, len(haystack)].
//
// Example:
//
//	p := substr.MustCompile("bc")
//	at, _ := p.FindAt([]byte("abcd"), 0) // 1
//	at, _ = p.FindAt([]byte("abd"), 0)   // -1
func (p *Pattern) FindAt(haystack []byte, start int) (int, error) {
	return p.engine.FindAt(haystack, start)
}

// Find returns the offset of the first occurrence in scan order, or -1.
//
// For forward patterns this is the leftmost occurrence; for reverse
// patterns the rightmost. Equivalent to FindAt with start 0 (forward) or
// len(haystack) (reverse).
func (p *Pattern) Find(haystack []byte) int {
	at, _ := p.FindAt(haystack, p.defaultStart(haystack))
	return at
}

// FindString is Find for a string haystack.
func (p *Pattern) FindString(haystack string) int {
	return p.Find([]byte(haystack))
}

// IterAt returns a lazy iterator over every occurrence of the pattern in
// haystack from the given cursor. Matches are reported overlapping: the
// cursor advances by exactly one byte after each match, so "aa" in
// "aaaa" yields 0, 1, 2. Returns ErrInvalidIndex if start is outside
// [0, len(haystack)].
//
// The iterator is single-pass and must not be shared between goroutines.
func (p *Pattern) IterAt(haystack []byte, start int) (*kmp.Iter, error) {
	return p.engine.IterAt(haystack, start)
}

// Iter is IterAt from the scan-order start of haystack.
func (p *Pattern) Iter(haystack []byte) *kmp.Iter {
	// The default cursor is always in bounds.
	it, _ := p.IterAt(haystack, p.defaultStart(haystack))
	return it
}

// FindAllAt returns the offsets of every occurrence of the pattern in
// haystack from the given cursor, overlapping, in scan order. Returns nil
// (not an empty slice) when there is no match, and ErrInvalidIndex if
// start is outside [0, len(haystack)].
//
// Example:
//
//	p := substr.MustCompile("a")
//	offsets, _ := p.FindAllAt([]byte("_a_a_a_"), 0)
//	// offsets = [1, 3, 5]
func (p *Pattern) FindAllAt(haystack []byte, start int) ([]int, error) {
	it, err := p.IterAt(haystack, start)
	if err != nil {
		return nil, err
	}
	var offsets []int
	for at, ok := it.Next(); ok; at, ok = it.Next() {
		offsets = append(offsets, at)
	}
	return offsets, nil
}

// FindAll is FindAllAt from the scan-order start of haystack.
func (p *Pattern) FindAll(haystack []byte) []int {
	offsets, _ := p.FindAllAt(haystack, p.defaultStart(haystack))
	return offsets
}

// Contains reports whether haystack contains the pattern.
func (p *Pattern) Contains(haystack []byte) bool {
	return p.Find(haystack) >= 0
}

// Len returns the pattern length in bytes.
func (p *Pattern) Len() int {
	return p.engine.Len()
}

// Direction returns the direction the pattern was compiled for.
func (p *Pattern) Direction() Direction {
	return p.engine.Direction()
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// defaultStart is the natural cursor for the pattern's direction: 0 for
// forward search, len(haystack) for reverse.
func (p *Pattern) defaultStart(haystack []byte) int {
	if p.engine.Direction() == kmp.Reverse {
		return len(haystack)
	}
	return 0
}
