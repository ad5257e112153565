// Package simd provides byte-search primitives for the substring engine.
//
// The implementations use SWAR (SIMD Within A Register): 8 haystack bytes
// are examined per step using uint64 bitwise operations, which is portable
// across all architectures and 2-5x faster than byte-at-a-time scanning on
// medium and large inputs.
//
// The primary consumers are the kmp package's skip loops, which use Memchr
// and Memrchr to jump directly to the next candidate position for a
// pattern's boundary byte.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants for the zero-byte detection in zeroBytes.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes returns a word with bit 0x80 set in exactly the bytes of x
// that are 0x00, and no other bits set.
//
// The textbook (x - lo8) & ^x & hi8 form is not used here: its
// subtraction borrows through 0x01 bytes sitting above a true zero and
// flags them too, so only its lowest set bit can be trusted. The callers
// need every flag to be real (Memrchr takes the highest, MemchrPair
// intersects two words), hence the exact form: (x | hi8) - lo8 clears a
// byte's high bit only when the byte is 0x00 or 0x80, it never borrows
// across bytes, and OR-ing x back in rules out 0x80.
func zeroBytes(x uint64) uint64 {
	return ^(x | ((x | hi8) - lo8)) & hi8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// It is equivalent to bytes.IndexByte. Inputs shorter than 8 bytes are
// scanned directly; longer inputs are processed 8 bytes per step.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		// XOR turns bytes equal to needle into 0x00, then zeroBytes
		// flags them.
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present.
//
// It is equivalent to bytes.LastIndexByte and is the mirror of Memchr:
// the haystack is processed 8 bytes per step from the end, and within a
// flagged chunk the highest matching byte wins (LeadingZeros instead of
// TrailingZeros).
//
// Example:
//
//	pos := simd.Memrchr([]byte("hello world"), 'o')
//	// pos == 7
func Memrchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := n - 1; i >= 0; i-- {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	i := n
	for ; i-8 >= 0; i -= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i-8:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			// The chunk is little-endian, so the most significant flagged
			// byte is the rightmost match in the haystack.
			return i - 8 + (7 - bits.LeadingZeros64(z)/8)
		}
	}
	for i--; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// MemchrPair returns the first index i such that haystack[i] == b1 and
// haystack[i+offset] == b2, or -1 if no such position exists.
//
// Requiring two bytes at a fixed distance is far more selective than a
// single-byte scan, which makes this a good candidate finder for patterns
// of two or more bytes: the kmp matcher uses the pattern's first and last
// byte with offset len(pattern)-1.
func MemchrPair(haystack []byte, b1, b2 byte, offset int) int {
	n := len(haystack)
	if offset < 0 || n <= offset {
		return -1
	}
	if n < 8+offset {
		for i := 0; i+offset < n; i++ {
			if haystack[i] == b1 && haystack[i+offset] == b2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(b1)
	mask2 := broadcast(b2)
	i := 0
	// Both loads must stay in bounds: 8 bytes at i and 8 bytes at i+offset.
	for ; i+8+offset <= n; i += 8 {
		chunk1 := binary.LittleEndian.Uint64(haystack[i:])
		chunk2 := binary.LittleEndian.Uint64(haystack[i+offset:])

		z1 := zeroBytes(chunk1 ^ mask1)
		z2 := zeroBytes(chunk2 ^ mask2)

		// Bit k of z1 flags b1 at i+k; bit k of z2 flags b2 at i+offset+k.
		// The intersection flags positions satisfying both.
		if z := z1 & z2; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i+offset < n; i++ {
		if haystack[i] == b1 && haystack[i+offset] == b2 {
			return i
		}
	}
	return -1
}
