package structure

import (
	"slices"
	"strings"

	"github.com/meteogo/bufrobs/bufr"
	"github.com/meteogo/bufrobs/internal/hash"
)

// Cache memoizes filtered key lists per message layout.
//
// Observation files routinely carry thousands of messages sharing a handful
// of layouts, so level inference and key filtering run once per layout and
// include set rather than once per message. Entries are bucketed by the
// xxHash64 of the combined identifier and verified by exact string
// comparison, so a hash collision costs an extra compare, never a wrong
// result.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	buckets map[uint64][]cacheEntry
	count   int
}

type cacheEntry struct {
	ident string
	keys  []Key
}

// NewCache creates an empty layout cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[uint64][]cacheEntry)}
}

// FilteredKeys returns the filtered keys of msg, computing them on the first
// sighting of a layout and returning the stored slice on every later one.
//
// Hits return the cached slice itself, not a copy; callers must treat it as
// read-only.
func (c *Cache) FilteredKeys(msg bufr.Message, include []string) []Key {
	sorted := slices.Clone(include)
	slices.Sort(sorted)

	ident := cacheIdent(Fingerprint(msg), sorted)
	id := hash.ID(ident)
	for _, entry := range c.buckets[id] {
		if entry.ident == ident {
			return entry.keys
		}
	}

	keys := slices.Collect(FilteredKeys(msg, sorted))
	c.buckets[id] = append(c.buckets[id], cacheEntry{ident: ident, keys: keys})
	c.count++

	return keys
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	return c.count
}

// cacheIdent joins the fingerprint with the include set using control
// characters that never occur in key names.
func cacheIdent(fingerprint string, include []string) string {
	if len(include) == 0 {
		return fingerprint
	}

	return fingerprint + "\x00" + strings.Join(include, "\x1f")
}
