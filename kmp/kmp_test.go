package kmp

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompileEmptyPattern(t *testing.T) {
	for _, dir := range []Direction{Forward, Reverse} {
		if _, err := Compile(nil, dir); !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("Compile(nil, %v) error = %v, want ErrEmptyPattern", dir, err)
		}
		if _, err := Compile([]byte{}, dir); !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("Compile(empty, %v) error = %v, want ErrEmptyPattern", dir, err)
		}
	}
}

func TestCompileCopiesPattern(t *testing.T) {
	src := []byte("abc")
	p, err := Compile(src, Forward)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	// Mutating the caller's slice must not affect the compiled pattern.
	src[0] = 'X'
	if !bytes.Equal(p.Literal(), []byte("abc")) {
		t.Errorf("Literal() = %q after caller mutation, want %q", p.Literal(), "abc")
	}
}

func TestPatternAccessors(t *testing.T) {
	p, err := Compile([]byte("needle"), Reverse)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.Len() != 6 {
		t.Errorf("Len() = %d, want 6", p.Len())
	}
	if p.Direction() != Reverse {
		t.Errorf("Direction() = %v, want Reverse", p.Direction())
	}
	if !bytes.Equal(p.Literal(), []byte("needle")) {
		t.Errorf("Literal() = %q, want %q", p.Literal(), "needle")
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Forward, "Forward"},
		{Reverse, "Reverse"},
		{Direction(99), "Direction(?)"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(tt.dir), got, tt.want)
		}
	}
}

// TestFailureTable checks the table against its definition: fail[i] is
// the length of the longest proper prefix of the pattern that is also a
// suffix of pattern[:i+1].
func TestFailureTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"ab", []int{0, 0}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abab", []int{0, 0, 1, 2}},
		{"ababc", []int{0, 0, 1, 2, 0}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"abcabcab", []int{0, 0, 0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := failureTable([]byte(tt.pattern))
			if len(got) != len(tt.want) {
				t.Fatalf("failureTable(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("failureTable(%q)[%d] = %d, want %d", tt.pattern, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestFailureTableDefinition cross-checks the builder against a
// brute-force evaluation of the definition.
func TestFailureTableDefinition(t *testing.T) {
	patterns := []string{
		"abracadabra", "aaaaaaa", "abcdefg", "aabaabaaa", "xyxyxyxz",
	}
	for _, pat := range patterns {
		needle := []byte(pat)
		got := failureTable(needle)
		for i := range needle {
			want := 0
			// Longest k < i+1 with needle[:k] == needle[i+1-k:i+1].
			for k := i; k >= 1; k-- {
				if bytes.Equal(needle[:k], needle[i+1-k:i+1]) {
					want = k
					break
				}
			}
			if got[i] != want {
				t.Errorf("failureTable(%q)[%d] = %d, want %d", pat, i, got[i], want)
			}
		}
	}
}

func TestReversePatternTable(t *testing.T) {
	// The reverse pattern's table is built over the reversed bytes.
	p, err := Compile([]byte("abb"), Reverse)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// needle = "bba", fail = [0, 1, 0]
	wantNeedle := []byte("bba")
	if !bytes.Equal(p.needle, wantNeedle) {
		t.Errorf("needle = %q, want %q", p.needle, wantNeedle)
	}
	wantFail := []int{0, 1, 0}
	for i, w := range wantFail {
		if p.fail[i] != w {
			t.Errorf("fail[%d] = %d, want %d", i, p.fail[i], w)
		}
	}
	// Literal is unchanged by the reversal.
	if !bytes.Equal(p.Literal(), []byte("abb")) {
		t.Errorf("Literal() = %q, want %q", p.Literal(), "abb")
	}
}
