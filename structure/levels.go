package structure

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/meteogo/bufrobs/bufr"
)

// coordOverrides fixes keys whose table code alone would misclassify them.
// subsetNumber is synthesized by decoders without a code yet opens a
// per-subset context; operator keys never open one.
var coordOverrides = map[string]bool{
	"subsetNumber": true,
	"operator":     false,
}

// Levels yields a (level, key) pair for every data key of msg in stream
// order.
//
// The level starts at 0. A coordinate key is assigned the current level and
// raises it by one for the keys that follow. When a coordinate name
// reappears, every context opened after its previous occurrence is closed
// first, LIFO order, and the key is assigned the level its name had before.
func Levels(msg bufr.Message) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		level := 0
		var open coordStack
		for key := range msg.Keys() {
			name := keyName(key)
			coord := isCoordinate(msg, key, name)
			if coord {
				if prev, ok := open.close(name); ok {
					level = prev
				}
			}
			if !yield(level, key) {
				return
			}
			if coord {
				open.push(name, level)
				level++
			}
		}
	}
}

// keyName strips the "#<rank>#" prefix from a raw key.
func keyName(key string) string {
	if i := strings.LastIndexByte(key, '#'); i >= 0 {
		return key[i+1:]
	}

	return key
}

// isCoordinate decides whether key opens a hierarchy context. The override
// table wins; otherwise the decision comes from the key's table code
// attribute, and a key without one is never a coordinate.
func isCoordinate(msg bufr.Message, key, name string) bool {
	if coord, ok := coordOverrides[name]; ok {
		return coord
	}
	code, err := msg.Get(key + bufr.AttrSep + "code")
	if err != nil {
		return false
	}

	return coordClass(code)
}

// coordClass reports whether a table code belongs to a coordinate class,
// classes 0 through 9. Decoders emit codes as zero-padded six digit strings;
// numeric codes are normalized to that form first.
func coordClass(code any) bool {
	var text string
	switch c := code.(type) {
	case string:
		text = c
	default:
		n, ok := bufr.AsInt64(c)
		if !ok {
			return false
		}
		text = fmt.Sprintf("%06d", n)
	}

	if len(text) > 3 {
		text = text[:3]
	}
	class, err := strconv.Atoi(text)
	if err != nil {
		return false
	}

	return class < 10
}

type coordEntry struct {
	name  string
	level int
}

// coordStack tracks the open coordinate contexts. Each name appears at most
// once: push always follows a close of the same name.
type coordStack struct {
	entries []coordEntry
}

func (s *coordStack) push(name string, level int) {
	s.entries = append(s.entries, coordEntry{name: name, level: level})
}

// close pops every context opened after name, and name's own, returning the
// level name was opened at. It reports false when name is not open.
func (s *coordStack) close(name string) (int, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			level := s.entries[i].level
			s.entries = s.entries[:i]

			return level, true
		}
	}

	return 0, false
}
