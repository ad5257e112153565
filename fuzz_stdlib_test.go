// Fuzz tests comparing substr behavior against the standard library.
//
// strings.Index, strings.LastIndex, and strings.Split are the reference
// semantics for forward search, reverse search, and splitting; any
// divergence is a bug. Run with:
//
//	go test -fuzz=FuzzFindStdlib -fuzztime=30s
//	go test -fuzz=FuzzSplitStdlib -fuzztime=30s
//	go test -fuzz=FuzzDistanceLaws -fuzztime=30s
package substr

import (
	"reflect"
	"strings"
	"testing"
)

func FuzzFindStdlib(f *testing.F) {
	f.Add("abcd", "bc")
	f.Add("aaaa", "aa")
	f.Add("", "x")
	f.Add("_a_a_a_", "a")
	f.Add("mississippi", "issi")

	f.Fuzz(func(t *testing.T, haystack, pattern string) {
		if pattern == "" {
			t.Skip()
		}

		fwd, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		if got, want := fwd.FindString(haystack), strings.Index(haystack, pattern); got != want {
			t.Errorf("Find(%q in %q) = %d, stdlib %d", pattern, haystack, got, want)
		}

		rev, err := CompileReverse(pattern)
		if err != nil {
			t.Fatalf("CompileReverse(%q): %v", pattern, err)
		}
		if got, want := rev.FindString(haystack), strings.LastIndex(haystack, pattern); got != want {
			t.Errorf("reverse Find(%q in %q) = %d, stdlib %d", pattern, haystack, got, want)
		}

		// FindAll must equal the brute-force overlapping occurrence set.
		var want []int
		for i := 0; i+len(pattern) <= len(haystack); i++ {
			if haystack[i:i+len(pattern)] == pattern {
				want = append(want, i)
			}
		}
		if got := fwd.FindAll([]byte(haystack)); !reflect.DeepEqual(got, want) {
			t.Errorf("FindAll(%q in %q) = %v, want %v", pattern, haystack, got, want)
		}
	})
}

func FuzzSplitStdlib(f *testing.F) {
	f.Add("aa,bb,cc", ",")
	f.Add("a--b----c--", "--")
	f.Add("", ",")
	f.Add("aaaa", "aa")

	f.Fuzz(func(t *testing.T, haystack, sep string) {
		if sep == "" {
			t.Skip()
		}

		parts, err := SplitStrings(haystack, sep)
		if err != nil {
			t.Fatalf("SplitStrings(%q, %q): %v", haystack, sep, err)
		}
		if std := strings.Split(haystack, sep); !reflect.DeepEqual(parts, std) {
			t.Errorf("SplitStrings(%q, %q) = %q, stdlib %q", haystack, sep, parts, std)
		}
		if got := strings.Join(parts, sep); got != haystack {
			t.Errorf("reassembly of %q split on %q = %q", haystack, sep, got)
		}
	})
}

func FuzzDistanceLaws(f *testing.F) {
	f.Add("kitten", "sitting")
	f.Add("", "abc")
	f.Add("aa", "aa")

	f.Fuzz(func(t *testing.T, a, b string) {
		// Cap the quadratic DP on fuzzer-sized inputs.
		if len(a) > 256 || len(b) > 256 {
			t.Skip()
		}

		d := Distance(a, b)
		if d < 0 {
			t.Fatalf("Distance(%q, %q) = %d, negative", a, b, d)
		}
		if got := Distance(b, a); got != d {
			t.Errorf("symmetry violated: %d vs %d", d, got)
		}
		if a == b && d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", a, b, d)
		}
		if d == 0 && a != b {
			t.Errorf("Distance(%q, %q) = 0 for unequal inputs", a, b)
		}
		// Length difference is a lower bound, longer length an upper bound.
		diff := len(a) - len(b)
		if diff < 0 {
			diff = -diff
		}
		longer := len(a)
		if len(b) > longer {
			longer = len(b)
		}
		if d < diff || d > longer {
			t.Errorf("Distance(%q, %q) = %d outside [%d, %d]", a, b, d, diff, longer)
		}
	})
}
