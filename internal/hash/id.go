// Package hash provides the string hashing used for structure cache buckets.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 digest of s.
//
// Digests are used as bucket keys and are always paired with an exact string
// comparison on lookup, so a collision costs an extra compare, never a wrong
// cache hit.
func ID(s string) uint64 {
	return xxhash.Sum64String(s)
}
