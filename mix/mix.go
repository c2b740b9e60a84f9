// Package mix implements the hash-then-index pipeline that turns a canonical
// key encoding and an immutable seed into a pseudo-random output word:
//
//	word = SplitMix64(Combine(seed, Hash(encodedKey)))
//
// Every stage is a pure function and stable across platforms and builds, so
// that shared seeds reproduce identical worlds. The stages are frozen: they
// are the compatibility contract locked by the repro test vectors.
package mix

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash maps a canonical key encoding to its 64-bit key hash. XXH64 gives the
// avalanche behavior needed to decorrelate similar keys (e.g. sequential ids)
// without any cryptographic cost.
func Hash(encoded []byte) uint64 {
	return xxhash.Sum64(encoded)
}

// Combine derives the combined index for a (seed, key hash) pair by hashing
// the 16-byte little-endian concatenation seed||keyHash. The second full
// hashing pass destroys any linear relationship between seed structure and
// key hash collisions that an additive or XOR combiner would preserve.
func Combine(seed, keyHash uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], keyHash)
	return xxhash.Sum64(buf[:])
}

// SplitMix64 is the splitmix64 finalizer. It maps a combined index to the
// output word, adding a last avalanche round so that even combined indices
// with low entropy in some bits yield well-distributed words.
func SplitMix64(x uint64) uint64 {
	z := x + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Unit converts an output word to a uniform float64 in [0, 1) using the top
// 53 bits, the full resolution of the float64 mantissa.
func Unit(bits uint64) float64 {
	return float64(bits>>11) / (1 << 53)
}
