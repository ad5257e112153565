// Package kmp implements precompiled literal-substring search.
//
// A pattern is compiled once into an immutable *Pattern holding the pattern
// bytes together with a Knuth-Morris-Pratt failure table, and can then be
// reused for any number of searches, concurrently if desired. Searching is
// guaranteed O(len(pattern) + bytes scanned) comparisons regardless of
// input: after a partial match fails, the failure table tells the matcher
// where to resume in the pattern without rescanning haystack bytes.
//
// Patterns are compiled for a fixed direction:
//   - Forward patterns scan left-to-right and report the leftmost match.
//   - Reverse patterns scan right-to-left from a caller-supplied boundary
//     and report the rightmost match ending at or before it.
//
// The direction is part of the compiled value and cannot be changed after
// construction; compile the pattern twice to search both ways.
//
// Basic usage:
//
//	p, err := kmp.Compile([]byte("bc"), kmp.Forward)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	at, _ := p.FindAt([]byte("abcd"), 0)
//	// at == 1
package kmp

// Direction selects the scan direction a pattern is compiled for.
type Direction int

const (
	// Forward compiles a pattern for left-to-right search.
	Forward Direction = iota

	// Reverse compiles a pattern for right-to-left search. The failure
	// table is built over the reversed pattern bytes so the search inner
	// loop is identical to the forward one.
	Reverse
)

// String returns "Forward" or "Reverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	default:
		return "Direction(?)"
	}
}

// Pattern is a compiled search pattern.
//
// A Pattern is immutable after Compile returns and is safe for concurrent
// use by multiple goroutines: searches only read the pattern and the
// haystack, so any number of them may run in parallel over shared data.
type Pattern struct {
	literal []byte // pattern bytes as supplied by the caller
	needle  []byte // scan-order bytes: literal, reversed for Reverse
	fail    []int  // failure table over needle
	dir     Direction
}

// Compile compiles pattern for searching in the given direction.
//
// The pattern bytes are copied; the caller's slice may be reused freely
// afterwards. Returns ErrEmptyPattern if pattern is empty.
//
// Example:
//
//	fwd, err := kmp.Compile([]byte("needle"), kmp.Forward)
//	rev, err := kmp.Compile([]byte("needle"), kmp.Reverse)
func Compile(pattern []byte, dir Direction) (*Pattern, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	literal := make([]byte, len(pattern))
	copy(literal, pattern)

	needle := literal
	if dir == Reverse {
		needle = make([]byte, len(literal))
		for i, b := range literal {
			needle[len(literal)-1-i] = b
		}
	}

	return &Pattern{
		literal: literal,
		needle:  needle,
		fail:    failureTable(needle),
		dir:     dir,
	}, nil
}

// failureTable builds the KMP failure function over needle: fail[i] is the
// length of the longest proper prefix of needle that is also a suffix of
// needle[:i+1].
//
// Construction is the textbook O(m) self-scan: k tracks the length of the
// current prefix-suffix, retreating through the table on mismatch.
func failureTable(needle []byte) []int {
	fail := make([]int, len(needle))
	k := 0
	for i := 1; i < len(needle); i++ {
		for k > 0 && needle[i] != needle[k] {
			k = fail[k-1]
		}
		if needle[i] == needle[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}

// Len returns the pattern length in bytes.
func (p *Pattern) Len() int {
	return len(p.literal)
}

// Direction returns the direction the pattern was compiled for.
func (p *Pattern) Direction() Direction {
	return p.dir
}

// Literal returns the pattern bytes as supplied to Compile.
// The returned slice is shared and must not be modified.
func (p *Pattern) Literal() []byte {
	return p.literal
}
