package substr

import "github.com/coregx/substr/editdist"

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-byte insertions, deletions, and substitutions turning
// a into b. It is defined for all inputs; Distance("", s) == len(s).
//
// This is a convenience delegation to the editdist package, which also
// offers DistanceThreshold and Ratio.
//
// Example:
//
//	substr.Distance("kitten", "sitting") // 3
func Distance(a, b string) int {
	return editdist.Distance(a, b)
}
