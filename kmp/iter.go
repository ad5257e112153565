package kmp

// Iter is a lazy stream of match offsets produced by IterAt.
//
// An Iter is single-pass and finite: each call to Next reports one match
// offset until the haystack is exhausted, after which Next keeps returning
// ok=false. It cannot be restarted; call IterAt again to scan anew.
//
// Matches are reported overlapping: after a match the cursor moves by
// exactly one byte, not by the pattern length, so "aa" in "aaaa" yields
// offsets 0, 1, 2. Callers that want non-overlapping matches should skip
// ahead themselves using the reported offset plus Pattern.Len.
//
// An Iter must not be shared between goroutines.
type Iter struct {
	p        *Pattern
	haystack []byte
	cursor   int // Forward: next left boundary; Reverse: next right boundary
	done     bool
}

// IterAt returns an iterator over every occurrence of the pattern in
// haystack starting from the given cursor.
//
// For Forward patterns matches are reported left-to-right with offsets
// >= start; for Reverse patterns right-to-left within haystack[:start].
// Returns ErrInvalidIndex if start is outside [0, len(haystack)].
//
// Example:
//
//	p, _ := kmp.Compile([]byte("a"), kmp.Forward)
//	it, _ := p.IterAt([]byte("_a_a_a_"), 0)
//	for at, ok := it.Next(); ok; at, ok = it.Next() {
//	    fmt.Println(at) // 1, 3, 5
//	}
func (p *Pattern) IterAt(haystack []byte, start int) (*Iter, error) {
	if start < 0 || start > len(haystack) {
		return nil, ErrInvalidIndex
	}
	return &Iter{p: p, haystack: haystack, cursor: start}, nil
}

// Next reports the next match offset. ok is false when no further match
// exists; the offset is -1 in that case.
func (it *Iter) Next() (at int, ok bool) {
	if it.done {
		return -1, false
	}

	if it.p.dir == Forward {
		at = it.p.findForward(it.haystack, it.cursor)
	} else {
		at = it.p.findReverse(it.haystack, it.cursor)
	}
	if at < 0 {
		it.done = true
		return -1, false
	}

	if it.p.dir == Forward {
		it.cursor = at + 1
	} else {
		// Mirror of the forward one-byte step: the next right boundary
		// admits matches ending one byte earlier, so reverse iteration
		// reports overlapping matches too.
		it.cursor = at + it.p.Len() - 1
	}
	return at, true
}
