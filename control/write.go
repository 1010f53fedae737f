package control

import (
	"fmt"
	"sort"
	"strings"

	"github.com/boutros/hdt/internal/crc"
)

// Write serializes a control block for the given type, format URI and
// properties, suitable for round-tripping through Read. It exists for
// tests that build synthetic HDT byte streams in memory.
func Write(typ Type, format string, properties map[string]string) []byte {
	var buf []byte
	buf = append(buf, Cookie...)
	buf = append(buf, byte(typ))
	buf = append(buf, format...)
	buf = append(buf, 0x00)
	buf = append(buf, encodeProperties(properties)...)
	buf = append(buf, 0x00)

	sum := crc.Checksum16(buf)
	return append(buf, byte(sum), byte(sum>>8))
}

func encodeProperties(properties map[string]string) string {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%s;", k, properties[k])
	}
	return sb.String()
}
