package structure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meteogo/bufrobs/bufr"
)

// Fingerprint returns the canonical layout identifier of msg.
//
// Two messages share a fingerprint exactly when the header fields that
// determine their key layout agree: edition, master table number, subset
// count, the unexpanded descriptor list and the delayed replication
// factors. A scalar descriptor field renders the same as its one element
// list form; the two describe the same expansion, so they must share an
// identifier. Absent and present scalar fields stay distinct. An absent
// delayed replication key reads as an empty factor list.
func Fingerprint(msg bufr.Message) string {
	var b strings.Builder
	writeHeaderScalar(&b, msg, "edition")
	b.WriteByte('|')
	writeHeaderScalar(&b, msg, "masterTableNumber")
	b.WriteByte('|')
	writeHeaderScalar(&b, msg, "numberOfSubsets")
	b.WriteByte('|')
	writeHeaderList(&b, msg, "unexpandedDescriptors")
	b.WriteByte('|')
	writeHeaderList(&b, msg, "delayedDescriptorReplicationFactor")

	return b.String()
}

// writeHeaderScalar writes the integer value of key, or "-" when the key is
// absent. The token can never collide with a rendered integer.
func writeHeaderScalar(b *strings.Builder, msg bufr.Message, key string) {
	v, err := msg.Get(key)
	if err != nil {
		b.WriteByte('-')
		return
	}
	writeValue(b, v)
}

// writeHeaderList writes the value of key as a comma separated list. A
// scalar value renders exactly as its one element list form. An absent key
// writes nothing.
func writeHeaderList(b *strings.Builder, msg bufr.Message, key string) {
	v, err := msg.Get(key)
	if err != nil {
		return
	}

	switch vals := v.(type) {
	case []int64:
		for i, n := range vals {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(n, 10))
		}
	case []int:
		for i, n := range vals {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(n))
		}
	case []any:
		for i, e := range vals {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValue(b, e)
		}
	default:
		writeValue(b, v)
	}
}

func writeValue(b *strings.Builder, v any) {
	if n, ok := bufr.AsInt64(v); ok {
		b.WriteString(strconv.FormatInt(n, 10))
		return
	}
	fmt.Fprint(b, v)
}
