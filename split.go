package substr

import "github.com/coregx/substr/kmp"

// SplitIter lazily decomposes a haystack into the slices between
// consecutive occurrences of a separator. It is produced by Split.
//
// The sequence follows brute-force splitting semantics exactly:
//   - adjacent separators yield an empty slice between them,
//   - a separator at the very start or end yields a leading or trailing
//     empty slice,
//   - a haystack without the separator yields one slice equal to the
//     whole haystack (so the sequence is never empty).
//
// Concatenating the slices with the separator reinserted between them
// reproduces the haystack byte for byte.
//
// Like kmp.Iter, a SplitIter is single-pass, finite, and not restartable.
type SplitIter struct {
	haystack []byte
	sep      *kmp.Pattern
	cursor   int
	done     bool
}

// Split returns a lazy iterator over the slices of haystack separated by
// sep. Separator occurrences are consumed left to right, non-overlapping.
// Returns ErrEmptySeparator if sep is empty.
//
// Example:
//
//	it, _ := substr.Split([]byte("a--b----c--"), []byte("--"))
//	for s, ok := it.Next(); ok; s, ok = it.Next() {
//	    fmt.Printf("%q ", s.String())
//	}
//	// "a" "b" "" "c" ""
func Split(haystack, sep []byte) (*SplitIter, error) {
	if len(sep) == 0 {
		return nil, ErrEmptySeparator
	}
	p, err := kmp.Compile(sep, kmp.Forward)
	if err != nil {
		return nil, err
	}
	return &SplitIter{haystack: haystack, sep: p}, nil
}

// Next returns the next slice of the haystack. ok is false once the
// sequence is exhausted.
func (si *SplitIter) Next() (s Slice, ok bool) {
	if si.done {
		return Slice{}, false
	}

	// The cursor never leaves [0, len(haystack)], so the search cannot
	// fail on bounds.
	at, _ := si.sep.FindAt(si.haystack, si.cursor)
	if at < 0 {
		si.done = true
		return newSlice(si.haystack, si.cursor, len(si.haystack)), true
	}

	s = newSlice(si.haystack, si.cursor, at)
	si.cursor = at + si.sep.Len()
	return s, true
}

// SplitAll is the eager variant of Split: every slice is materialized as
// an owned copy, so the result is independent of the haystack. Returns
// ErrEmptySeparator if sep is empty.
//
// The result always has 1 + (number of non-overlapping occurrences of
// sep) elements.
func SplitAll(haystack, sep []byte) ([][]byte, error) {
	it, err := Split(haystack, sep)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		out = append(out, s.Copy())
	}
	return out, nil
}

// SplitStrings is SplitAll for string inputs and outputs.
//
// Example:
//
//	parts, _ := substr.SplitStrings("aa,bb,cc", ",")
//	// parts = ["aa", "bb", "cc"]
func SplitStrings(haystack, sep string) ([]string, error) {
	it, err := Split([]byte(haystack), []byte(sep))
	if err != nil {
		return nil, err
	}
	var out []string
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		out = append(out, s.String())
	}
	return out, nil
}

// Cut splits haystack around the leftmost occurrence of sep, returning
// the slices before and after it. found is false (and both slices empty)
// when sep does not occur. Returns ErrEmptySeparator if sep is empty.
//
// Example:
//
//	before, after, found, _ := substr.Cut([]byte("ab cde f g "), []byte(" "))
//	// before = "ab", after = "cde f g ", found = true
func Cut(haystack, sep []byte) (before, after Slice, found bool, err error) {
	p, err := compileSep(sep, kmp.Forward)
	if err != nil {
		return Slice{}, Slice{}, false, err
	}
	at, _ := p.FindAt(haystack, 0)
	if at < 0 {
		return Slice{}, Slice{}, false, nil
	}
	return newSlice(haystack, 0, at),
		newSlice(haystack, at+len(sep), len(haystack)),
		true, nil
}

// CutLast splits haystack around the rightmost occurrence of sep, found
// by reverse search. found is false when sep does not occur. Returns
// ErrEmptySeparator if sep is empty.
func CutLast(haystack, sep []byte) (before, after Slice, found bool, err error) {
	p, err := compileSep(sep, kmp.Reverse)
	if err != nil {
		return Slice{}, Slice{}, false, err
	}
	at, _ := p.FindAt(haystack, len(haystack))
	if at < 0 {
		return Slice{}, Slice{}, false, nil
	}
	return newSlice(haystack, 0, at),
		newSlice(haystack, at+len(sep), len(haystack)),
		true, nil
}

// CutLastStrict is CutLast for callers that treat an absent separator as
// exceptional: it returns ErrNotFound instead of a found flag.
func CutLastStrict(haystack, sep []byte) (before, after Slice, err error) {
	before, after, found, err := CutLast(haystack, sep)
	if err != nil {
		return Slice{}, Slice{}, err
	}
	if !found {
		return Slice{}, Slice{}, ErrNotFound
	}
	return before, after, nil
}

// compileSep compiles a separator, translating the kmp empty-pattern
// error into the splitting taxonomy.
func compileSep(sep []byte, dir kmp.Direction) (*kmp.Pattern, error) {
	if len(sep) == 0 {
		return nil, ErrEmptySeparator
	}
	return kmp.Compile(sep, dir)
}
