package hashadt

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Ready-made hash/equality callback pairs for common key types. A table over
// string keys is built as New(HashString, EqualString, ...).

// HashString hashes s with xxHash64.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }

// EqualString reports whether two string keys are equal.
func EqualString(a, b string) bool { return a == b }

// HashBytes hashes b with xxHash64.
func HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// EqualBytes reports whether two byte-slice keys hold the same bytes.
func EqualBytes(a, b []byte) bool { return bytes.Equal(a, b) }

// HashUint64 runs k through a SplitMix64 finalizer so that sequential keys
// spread across the whole table instead of clustering in adjacent slots.
func HashUint64(k uint64) uint64 {
	k ^= k >> 30
	k *= 0xbf58476d1ce4e5b9
	k ^= k >> 27
	k *= 0x94d049bb133111eb
	k ^= k >> 31
	return k
}

// EqualUint64 reports whether two uint64 keys are equal.
func EqualUint64(a, b uint64) bool { return a == b }
