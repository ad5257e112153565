package substr

// Slice is a non-owning view into a haystack: the owning byte slice plus
// a start and end offset. It is the unit the splitting API hands out, so
// splitting allocates nothing beyond the slice headers.
//
// A Slice borrows the owner's storage. It stays valid as long as the
// owner does; copy it out with String or Copy before the owner goes away
// or is reused.
//
// Invariants: 0 <= Start() <= End() <= len(owner).
//
// Example:
//
//	before, after, found, _ := substr.Cut([]byte("key=value"), []byte("="))
//	// before.String() == "key", after.String() == "value", found == true
type Slice struct {
	owner []byte
	start int
	end   int
}

// newSlice builds a view of owner[start:end]. Callers guarantee the
// bounds; there is no public constructor.
func newSlice(owner []byte, start, end int) Slice {
	return Slice{owner: owner, start: start, end: end}
}

// Start returns the inclusive start offset of the view in its owner.
func (s Slice) Start() int {
	return s.start
}

// End returns the exclusive end offset of the view in its owner.
func (s Slice) End() int {
	return s.end
}

// Len returns the length of the view in bytes.
func (s Slice) Len() int {
	return s.end - s.start
}

// IsEmpty reports whether the view has zero length. Splitting produces
// empty slices between adjacent separators and at a leading or trailing
// separator.
func (s Slice) IsEmpty() bool {
	return s.start == s.end
}

// Bytes returns the viewed bytes.
//
// The returned slice aliases the owner (no copy). Callers should use
// Copy or String if they need the data to outlive the owner.
func (s Slice) Bytes() []byte {
	return s.owner[s.start:s.end]
}

// Copy returns the viewed bytes as an owned copy, safe to retain after
// the owner is discarded.
func (s Slice) Copy() []byte {
	out := make([]byte, s.Len())
	copy(out, s.owner[s.start:s.end])
	return out
}

// String returns the viewed bytes as a string. The conversion copies, so
// the result is independent of the owner.
func (s Slice) String() string {
	return string(s.owner[s.start:s.end])
}
