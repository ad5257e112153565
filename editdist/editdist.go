// Package editdist computes the Levenshtein edit distance between strings.
//
// The distance is the minimum number of single-byte insertions, deletions,
// and substitutions transforming one string into the other. It is defined
// for every pair of strings, including empty ones, and satisfies the usual
// metric laws: Distance(s, s) == 0, symmetry, and the triangle inequality.
//
// The implementation is the classic dynamic program over a
// [0..len(a)] x [0..len(b)] table, but only two rows are ever held in
// memory, so space is O(min(len(a), len(b))) while time remains
// O(len(a) * len(b)). All state is local to a call; the package is
// trivially safe for concurrent use.
//
// Distances are computed over bytes. For ASCII and other single-byte data
// a byte is a character; multi-byte UTF-8 sequences count one edit per
// differing byte.
package editdist

// Distance returns the Levenshtein distance between a and b.
//
// Example:
//
//	editdist.Distance("kitten", "sitting") // 3
//	editdist.Distance("", "abc")           // 3
//	editdist.Distance("abc", "abc")        // 0
func Distance(a, b string) int {
	// Keep b the shorter string so the rows are as small as possible.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// DistanceThreshold returns the distance between a and b if it is at most
// limit, and limit+1 otherwise. The length difference of the inputs is a
// lower bound on the distance, so grossly mismatched strings are rejected
// without running the dynamic program at all.
//
// Useful for fuzzy lookup where anything beyond a cutoff is equally
// uninteresting.
func DistanceThreshold(a, b string, limit int) int {
	if limit < 0 {
		return 0
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > limit {
		return limit + 1
	}
	if d := Distance(a, b); d <= limit {
		return d
	}
	return limit + 1
}

// Ratio returns a similarity score in [0, 1]: 1 for equal strings, 0 for
// strings with nothing in common, linear in the distance relative to the
// longer input.
func Ratio(a, b string) float64 {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(longer)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
