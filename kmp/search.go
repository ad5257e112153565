package kmp

import "github.com/coregx/substr/simd"

// FindAt returns the offset of the next occurrence of the pattern in
// haystack relative to start, or -1 if there is none. Absence of a match
// is a normal outcome, not an error.
//
// For Forward patterns start is a left boundary: the leftmost occurrence
// beginning at offset >= start is reported.
//
// For Reverse patterns start is a right boundary: only occurrences lying
// wholly within haystack[:start] are considered, and the start offset of
// the rightmost one is reported.
//
// Returns ErrInvalidIndex if start is outside [0, len(haystack)]. The
// bound is checked before any scanning begins.
//
// Example:
//
//	p, _ := kmp.Compile([]byte("bc"), kmp.Forward)
//	at, _ := p.FindAt([]byte("abcd"), 0)
//	// at == 1
//
//	r, _ := kmp.Compile([]byte("bc"), kmp.Reverse)
//	at, _ = r.FindAt([]byte("abcbc"), 5)
//	// at == 3
func (p *Pattern) FindAt(haystack []byte, start int) (int, error) {
	if start < 0 || start > len(haystack) {
		return -1, ErrInvalidIndex
	}
	if p.dir == Forward {
		return p.findForward(haystack, start), nil
	}
	return p.findReverse(haystack, start), nil
}

// findForward is the forward KMP scan. When the pattern cursor is at 0 it
// skips to the next candidate with a paired-byte SWAR scan (first and last
// pattern byte at distance len-1), which only discards positions that
// cannot begin a match, so results are identical to a brute-force scan.
func (p *Pattern) findForward(haystack []byte, start int) int {
	n := len(haystack)
	m := len(p.needle)
	if m > n-start {
		return -1
	}
	if m == 1 {
		if i := simd.Memchr(haystack[start:], p.needle[0]); i >= 0 {
			return start + i
		}
		return -1
	}

	first := p.needle[0]
	last := p.needle[m-1]
	i := start
	k := 0
	for i < n {
		if k == 0 {
			j := simd.MemchrPair(haystack[i:], first, last, m-1)
			if j < 0 {
				return -1
			}
			// The candidate's first byte is already verified; resume the
			// pattern cursor just past it.
			i += j + 1
			k = 1
			continue
		}
		if haystack[i] == p.needle[k] {
			i++
			k++
			if k == m {
				return i - m
			}
		} else {
			k = p.fail[k-1]
		}
	}
	return -1
}

// findReverse is the mirror scan: needle holds the reversed pattern, the
// haystack is walked right-to-left from the boundary, and the match start
// is the last (leftmost) byte compared. The failure table was built over
// the reversed bytes, so the inner loop is the same as the forward one.
func (p *Pattern) findReverse(haystack []byte, start int) int {
	m := len(p.needle)
	if m > start {
		return -1
	}
	// needle[0] is the original pattern's final byte.
	if m == 1 {
		return simd.Memrchr(haystack[:start], p.needle[0])
	}

	i := start - 1
	k := 0
	for i >= 0 {
		if k == 0 {
			j := simd.Memrchr(haystack[:i+1], p.needle[0])
			if j+1 < m {
				// No candidate left, or a match ending at j would run
				// past the start of the haystack.
				return -1
			}
			i = j - 1
			k = 1
			continue
		}
		if haystack[i] == p.needle[k] {
			i--
			k++
			if k == m {
				return i + 1
			}
		} else {
			k = p.fail[k-1]
		}
	}
	return -1
}
