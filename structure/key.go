package structure

import (
	"strconv"
	"strings"
)

// Key identifies one datum of a message: its nesting level, its occurrence
// rank, and its element name. Rank 0 means the key appeared without a
// "#<rank>#" prefix, as header keys do.
type Key struct {
	Level int
	Rank  int
	Name  string
}

// ParseKey splits a raw key into rank and name and attaches the given level.
//
// "#2#airTemperature" parses to rank 2, name "airTemperature"; "edition"
// parses to rank 0. A malformed rank prefix does not fail: the whole raw key
// becomes the name, so adversarial input degrades to an unmatchable key
// instead of an error.
func ParseKey(level int, raw string) Key {
	sep := strings.LastIndexByte(raw, '#')
	if sep < 0 {
		return Key{Level: level, Name: raw}
	}

	rankText := raw[:sep]
	if len(rankText) < 2 || rankText[0] != '#' {
		return Key{Level: level, Name: raw}
	}
	rank, err := strconv.Atoi(rankText[1:])
	if err != nil || rank < 0 {
		return Key{Level: level, Name: raw}
	}

	return Key{Level: level, Rank: rank, Name: raw[sep+1:]}
}

// String renders the key in its ranked decoder form, without the level.
func (k Key) String() string {
	if k.Rank == 0 {
		return k.Name
	}

	return "#" + strconv.Itoa(k.Rank) + "#" + k.Name
}
