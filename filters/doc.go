// Package filters provides the value predicates used to select observations
// during extraction.
//
// A filter is attached to a column name and is consulted every time the
// extraction walk reaches a value for that name. Matching is numeric across
// integer and float representations, since decoders differ in how they
// surface BUFR values, and range bounds are inclusive at both ends.
//
//	fs := map[string]filters.Filter{
//	    "stationNumber": filters.In(894, 895),
//	    "pressure":      filters.Range(95, 100),
//	    "count":         filters.Range(nil, 2),
//	}
//
// Range treats a nil bound as open, so Range(nil, 100) accepts anything up
// to and including 100 and Range(nil, nil) accepts every value. Func wraps
// an arbitrary predicate for conditions the fixed forms cannot express.
package filters
