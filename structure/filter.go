package structure

import (
	"iter"

	"github.com/meteogo/bufrobs/bufr"
)

// FilteredKeys yields the parsed keys of msg that match the include set,
// lazily and in stream order.
//
// A key matches when its plain name or its ranked form appears in include,
// so "airTemperature" selects every occurrence while "#2#airTemperature"
// selects the second one only. An empty include keeps everything.
func FilteredKeys(msg bufr.Message, include []string) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		wanted := make(map[string]struct{}, len(include))
		for _, name := range include {
			wanted[name] = struct{}{}
		}
		for level, raw := range Levels(msg) {
			key := ParseKey(level, raw)
			if len(wanted) > 0 {
				if _, ok := wanted[key.Name]; !ok {
					if _, ok := wanted[key.String()]; !ok {
						continue
					}
				}
			}
			if !yield(key) {
				return
			}
		}
	}
}
