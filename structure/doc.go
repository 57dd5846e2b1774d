// Package structure reconstructs the hierarchy of a decoded BUFR message
// from its flat key stream.
//
// A decoder yields keys in a single flat sequence, but the data model behind
// them is hierarchical: coordinate descriptors (latitude, pressure, time
// period, ...) open a context that applies to every following key until the
// same coordinate appears again. This package infers that hierarchy, filters
// the keys of interest, and caches the result per message layout so that
// files with thousands of identically structured messages pay the inference
// cost once.
//
// # Level inference
//
// Levels walks the key stream and assigns a nesting level to every key. A
// key is a coordinate when the first three digits of its table code are
// below 10, with a small override table for keys whose code alone would
// misclassify them. Encountering a coordinate that is already open closes
// every context opened after it, LIFO order:
//
//	for level, key := range structure.Levels(msg) {
//	    fmt.Println(level, key)
//	}
//
// # Filtering and caching
//
// FilteredKeys parses the leveled stream into Key values and keeps those
// whose name or ranked form is requested. Cache memoizes the slice under a
// fingerprint of the header fields that determine a message's layout
// (edition, master table, subset count, descriptor expansion), so repeated
// layouts return the cached slice as-is:
//
//	cache := structure.NewCache()
//	keys := cache.FilteredKeys(msg, []string{"latitude", "airTemperature"})
//
// The returned slice is shared with the cache and must not be modified.
package structure
