package hdt

import (
	"bytes"

	"github.com/boutros/hdt/control"
	"github.com/boutros/hdt/dict"
	"github.com/boutros/hdt/internal/bitmap"
	"github.com/boutros/hdt/internal/bitseq"
)

// buildFixture assembles a complete in-memory HDT byte stream for the
// dataset:
//
//	s1 p1 o1
//	s1 p1 o2
//	s1 p2 o1
//	s2 p1 o3
//	s3 p2 o2
//	s3 p3 o1
//
// Subjects, predicates and objects are disjoint (no shared section),
// so dictionary ids equal their 1-based position within each section.
func buildFixture(headerBody string) []byte {
	var buf bytes.Buffer

	buf.Write(control.Write(control.Global, control.FormatGlobal, nil))

	hdr := []byte(headerBody)
	buf.Write(control.Write(control.Header, "ntriples", map[string]string{
		"length": itoa(len(hdr)),
	}))
	buf.Write(hdr)

	buf.Write(control.Write(control.Dictionary, control.FormatDictionary, nil))
	buf.Write(dict.Write(dict.BuildPFC(nil, 8)))
	buf.Write(dict.Write(dict.BuildPFC([]string{
		"http://example.org/s1",
		"http://example.org/s2",
		"http://example.org/s3",
	}, 8)))
	buf.Write(dict.Write(dict.BuildPFC([]string{
		"http://example.org/p1",
		"http://example.org/p2",
		"http://example.org/p3",
	}, 8)))
	buf.Write(dict.Write(dict.BuildPFC([]string{
		"http://example.org/o1",
		"http://example.org/o2",
		"http://example.org/o3",
	}, 8)))

	buf.Write(control.Write(control.Triples, control.FormatTriples, map[string]string{"order": "1"}))

	seqYVals := []uint64{1, 2, 1, 2, 3}
	bitsY := bitseq.BitsFor(3)
	buf.Write(bitmap.Write(bitmap.FromBools([]bool{false, true, true, false, true}), 5))
	bZBits := []bool{false, true, true, true, true, true}
	buf.Write(bitmap.Write(bitmap.FromBools(bZBits), 6))
	buf.Write(bitseq.Write(bitsY, len(seqYVals), bitseq.PackBits(bitsY, seqYVals)))

	seqZVals := []uint64{1, 2, 1, 3, 2, 1}
	bitsZ := bitseq.BitsFor(3)
	buf.Write(bitseq.Write(bitsZ, len(seqZVals), bitseq.PackBits(bitsZ, seqZVals)))

	return buf.Bytes()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
