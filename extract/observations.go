package extract

import (
	"iter"

	"github.com/meteogo/bufrobs/bufr"
	"github.com/meteogo/bufrobs/filters"
	"github.com/meteogo/bufrobs/structure"
)

// Observations walks the filtered keys of msg and yields one record per
// observation.
//
// A record is emitted when the walk returns to a level at or above the top
// of the level stack, provided every filtered name has a value, and once
// more at the end of the walk. Emission happens before backtracking, so the
// record captures the deepest state reached. When a filtered value rejects,
// the walk skips every key below the failing level until it climbs back up.
//
// Compressed messages run the walk once per subset over the same key list;
// per-key values are fetched once and memoized across subsets. base seeds
// every subset's record; a nil base starts empty. Records are yielded as
// independent snapshots. A decoder read failure ends the sequence with an
// error.
func Observations(msg bufr.Message, keys []structure.Key, fs map[string]filters.Filter, base *Record) iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		values := make(map[string]any, len(keys))
		subsets := 1
		if isCompressed(msg) {
			subsets = subsetCount(msg)
		}

		for subset := 0; subset < subsets; subset++ {
			rec := NewRecord()
			if base != nil {
				for name, value := range base.All() {
					rec.Set(name, value)
				}
			}
			levels := []int{0}
			failedLevel := 0
			failed := false

			for _, key := range keys {
				level := key.Level
				name := key.Name

				if failed && level > failedLevel {
					continue
				}

				if hasAllFilterNames(rec, fs) && closesScope(rec, levels, level, name) {
					if !yield(rec.Clone(), nil) {
						return
					}
				}

				for rec.Len() > 0 && closesScope(rec, levels, level, name) {
					rec.PopLast()
					if len(levels) > 1 {
						levels = levels[:len(levels)-1]
					}
				}

				text := key.String()
				value, ok := values[text]
				if !ok {
					var err error
					value, err = msg.Get(text)
					if err != nil {
						yield(nil, err)
						return
					}
					values[text] = value
				}
				value = subsetValue(value, subset, subsets)
				if f, ok := value.(float64); ok && f == bufr.MissingDouble {
					value = nil
				}

				if f, ok := fs[name]; ok {
					if !f.Match(value) {
						failed = true
						failedLevel = level

						continue
					}
					failed = false
				}

				rec.Set(name, value)
				levels = append(levels, level)
			}

			if hasAllFilterNames(rec, fs) {
				if !yield(rec.Clone(), nil) {
					return
				}
			}
		}
	}
}

// closesScope reports whether a key at level closes the scope on top of the
// level stack: either it sits above the top, or at the top while its name is
// already taken.
func closesScope(rec *Record, levels []int, level int, name string) bool {
	top := levels[len(levels)-1]

	return level < top || (level == top && rec.Has(name))
}

// hasAllFilterNames reports whether every filtered name has a value in rec.
// Records missing a filtered name are never emitted.
func hasAllFilterNames(rec *Record, fs map[string]filters.Filter) bool {
	for name := range fs {
		if !rec.Has(name) {
			return false
		}
	}

	return true
}

// subsetValue picks the element for the current subset from array values
// whose length equals the subset count. Arrays of any other length pass
// through whole.
func subsetValue(v any, subset, count int) any {
	switch vals := v.(type) {
	case []float64:
		if len(vals) == count {
			return vals[subset]
		}
	case []int64:
		if len(vals) == count {
			return vals[subset]
		}
	case []int:
		if len(vals) == count {
			return vals[subset]
		}
	case []string:
		if len(vals) == count {
			return vals[subset]
		}
	case []any:
		if len(vals) == count {
			return vals[subset]
		}
	}

	return v
}

// isCompressed reports whether the message stores its data section in
// compressed, column-major form. Messages without the flag count as
// uncompressed.
func isCompressed(msg bufr.Message) bool {
	v, err := msg.Get("compressedData")
	if err != nil {
		return false
	}
	n, ok := bufr.AsInt64(v)

	return ok && n != 0
}

func subsetCount(msg bufr.Message) int {
	v, err := msg.Get("numberOfSubsets")
	if err != nil {
		return 1
	}
	n, ok := bufr.AsInt64(v)
	if !ok || n < 1 {
		return 1
	}

	return int(n)
}
