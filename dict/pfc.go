// Package dict implements the four-section plain front-coded (PFC)
// string dictionary: one section each for shared subject/object terms,
// subjects, predicates and objects.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/boutros/hdt/internal/bitseq"
	"github.com/boutros/hdt/internal/crc"
	"github.com/boutros/hdt/internal/vbyte"
)

const pfcBlockType = 0x02

// PFCSection is a plain front-coded dictionary section: block-first
// terms stored in full, subsequent terms in each block stored as a
// shared-prefix length and a suffix.
type PFCSection struct {
	numStrings int
	blockSize  int
	offsets    *bitseq.Sequence // one entry per block: byte offset of the block's first term
	packed     []byte
}

// NumStrings returns the number of strings held by the section.
func (s *PFCSection) NumStrings() int { return s.numStrings }

// SizeInBytes returns the approximate live memory footprint.
func (s *PFCSection) SizeInBytes() int {
	size := len(s.packed) + 24
	if s.offsets != nil {
		size += s.offsets.SizeInBytes()
	}
	return size
}

func (s *PFCSection) numBlocks() int {
	if s.offsets == nil {
		return 0
	}
	return s.offsets.Len()
}

func (s *PFCSection) strlen(offset int) int {
	i := offset
	for i < len(s.packed) && s.packed[i] != 0 {
		i++
	}
	return i - offset
}

// Extract returns the string with the given 1-based id. It returns
// ErrOutOfRange if id is outside [1, numStrings]. A string that is not
// valid UTF-8 is reported via ErrBadUtf8, which carries the raw bytes
// and a lossy recovery string.
func (s *PFCSection) Extract(id int) (string, error) {
	if id < 1 || id > s.numStrings {
		return "", fmt.Errorf("dict: %w: id %d, section has %d strings", ErrOutOfRange, id, s.numStrings)
	}
	blockIdx := (id - 1) / s.blockSize
	stringIdx := (id - 1) % s.blockSize

	pos := int(s.offsets.Get(blockIdx))
	slen := s.strlen(pos)
	buf := append([]byte(nil), s.packed[pos:pos+slen]...)

	for i := 0; i < stringIdx; i++ {
		pos += slen + 1
		delta, n, err := vbyte.DecodeBytes(s.packed, pos)
		if err != nil {
			return "", fmt.Errorf("dict: decoding shared-prefix length: %w", err)
		}
		pos += n
		slen = s.strlen(pos)
		buf = append(buf[:delta], s.packed[pos:pos+slen]...)
	}

	if !utf8.Valid(buf) {
		return strings.ToValidUTF8(string(buf), "�"), fmt.Errorf("dict: %w: %q", ErrBadUtf8, buf)
	}
	return string(buf), nil
}

// Locate returns the 1-based id of term, or 0 if the section does not
// contain it.
func (s *PFCSection) Locate(term string) int {
	if s.numStrings == 0 {
		return 0
	}

	blocks := s.numBlocks()
	low, high := 0, blocks-1
	for low <= high {
		mid := (low + high) / 2
		blockTerm := s.blockFirstTerm(mid)
		switch {
		case term == blockTerm:
			return mid*s.blockSize + 1
		case term < blockTerm:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	// high is now the last block whose first term is < term (or -1).
	if high < 0 {
		return 0
	}
	offset, found := s.locateInBlock(high, term)
	if !found {
		return 0
	}
	return high*s.blockSize + offset + 1
}

func (s *PFCSection) blockFirstTerm(block int) string {
	pos := int(s.offsets.Get(block))
	slen := s.strlen(pos)
	return string(s.packed[pos : pos+slen])
}

// locateInBlock scans block sequentially and returns the 0-based offset
// of term within the block, and whether it was found. Scanning stops
// early once a reconstructed term compares greater than term, since
// terms within a block are strictly increasing.
func (s *PFCSection) locateInBlock(block int, term string) (int, bool) {
	if block >= s.numBlocks() {
		return 0, false
	}
	pos := int(s.offsets.Get(block))

	slen := s.strlen(pos)
	current := append([]byte(nil), s.packed[pos:pos+slen]...)
	pos += slen + 1

	if string(current) == term {
		return 0, true
	}
	if string(current) > term {
		return 0, false
	}

	for k := 1; k < s.blockSize && pos < len(s.packed); k++ {
		delta, n, err := vbyte.DecodeBytes(s.packed, pos)
		if err != nil {
			return 0, false
		}
		pos += n
		slen = s.strlen(pos)

		boundary := floorCharBoundary(current, int(delta))
		current = append(current[:boundary], s.packed[pos:pos+slen]...)

		if string(current) == term {
			return k, true
		}
		if string(current) > term {
			return 0, false
		}
		pos += slen + 1
	}
	return 0, false
}

// floorCharBoundary returns the largest index <= n that is not in the
// middle of a UTF-8 multi-byte sequence, so that truncating/reusing the
// reconstruction buffer at that point never splits a rune.
func floorCharBoundary(b []byte, n int) int {
	if n >= len(b) {
		return len(b)
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return n
}

// ReadPFCSection parses a framed PFC section: type byte,
// vbyte(numStrings), vbyte(packedLen), vbyte(blockSize), CRC-8/SMBus
// over the preceding bytes, a bit-packed sequence of per-block byte
// offsets, packedLen bytes of front-coded payload, CRC-32/ISCSI over the
// payload. br must be the same buffered reader used for the whole
// stream, so that no already-buffered look-ahead bytes are lost to a
// throwaway wrapper.
func ReadPFCSection(br *bufio.Reader) (*PFCSection, error) {
	var header []byte
	t, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("dict: reading type byte: %w", err)
	}
	if t != pfcBlockType {
		return nil, fmt.Errorf("dict: unexpected block type %#x", t)
	}
	header = append(header, t)

	numStrings, raw, err := vbyteReadCounting(br)
	if err != nil {
		return nil, fmt.Errorf("dict: reading numStrings: %w", err)
	}
	header = append(header, raw...)

	packedLen, raw, err := vbyteReadCounting(br)
	if err != nil {
		return nil, fmt.Errorf("dict: reading packedLen: %w", err)
	}
	header = append(header, raw...)

	blockSize, raw, err := vbyteReadCounting(br)
	if err != nil {
		return nil, fmt.Errorf("dict: reading blockSize: %w", err)
	}
	header = append(header, raw...)

	wantCRC8, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("dict: reading crc8: %w", err)
	}
	if got := crc.Checksum8(header); got != wantCRC8 {
		return nil, fmt.Errorf("dict: crc8 mismatch on section metadata")
	}

	var offsets *bitseq.Sequence
	if numStrings > 0 {
		offsets, err = bitseq.Read(br)
		if err != nil {
			return nil, fmt.Errorf("dict: reading offsets sequence: %w", err)
		}
	}

	packed := make([]byte, packedLen)
	if _, err := io.ReadFull(br, packed); err != nil {
		return nil, fmt.Errorf("dict: reading packed data: %w", err)
	}

	var wantCRC32 [4]byte
	if _, err := io.ReadFull(br, wantCRC32[:]); err != nil {
		return nil, fmt.Errorf("dict: reading crc32: %w", err)
	}
	gotCRC32 := crc.Checksum32(packed)
	if byte(gotCRC32) != wantCRC32[0] || byte(gotCRC32>>8) != wantCRC32[1] ||
		byte(gotCRC32>>16) != wantCRC32[2] || byte(gotCRC32>>24) != wantCRC32[3] {
		return nil, fmt.Errorf("dict: crc32 mismatch on packed data")
	}

	return &PFCSection{
		numStrings: int(numStrings),
		blockSize:  int(blockSize),
		offsets:    offsets,
		packed:     packed,
	}, nil
}

func vbyteReadCounting(br *bufio.Reader) (uint64, []byte, error) {
	var raw []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, nil, err
		}
		raw = append(raw, b)
		if b&0x80 != 0 {
			break
		}
	}
	n, _, err := vbyte.DecodeBytes(raw, 0)
	return n, raw, err
}

// BuildPFC constructs a PFCSection from a lexicographically sorted list
// of distinct terms, for use by tests building synthetic fixtures. It is
// the encoding counterpart of Read/Extract/Locate.
func BuildPFC(terms []string, blockSize int) *PFCSection {
	if !sort.StringsAreSorted(terms) {
		sorted := append([]string(nil), terms...)
		sort.Strings(sorted)
		terms = sorted
	}
	if blockSize < 1 {
		blockSize = 1
	}

	var packed []byte
	var blockOffsets []uint64
	var prev string

	for i, term := range terms {
		if i%blockSize == 0 {
			blockOffsets = append(blockOffsets, uint64(len(packed)))
			packed = append(packed, term...)
			packed = append(packed, 0x00)
			prev = term
			continue
		}
		shared := commonPrefixLen(prev, term)
		packed = vbyte.Encode(packed, uint64(shared))
		packed = append(packed, term[shared:]...)
		packed = append(packed, 0x00)
		prev = term
	}

	var offsets *bitseq.Sequence
	if len(blockOffsets) > 0 {
		maxOffset := blockOffsets[len(blockOffsets)-1]
		bitsPerEntry := bitseq.BitsFor(maxOffset)
		words := bitseq.PackBits(bitsPerEntry, blockOffsets)
		offsets = bitseq.New(bitsPerEntry, len(blockOffsets), words)
	}

	return &PFCSection{
		numStrings: len(terms),
		blockSize:  blockSize,
		offsets:    offsets,
		packed:     packed,
	}
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return floorCharBoundary([]byte(a), i)
}

// Write serializes s as a framed PFC section, for round-tripping
// synthetic fixtures through Read in tests.
func Write(s *PFCSection) []byte {
	var header []byte
	header = append(header, pfcBlockType)
	header = vbyte.Encode(header, uint64(s.numStrings))
	header = vbyte.Encode(header, uint64(len(s.packed)))
	header = vbyte.Encode(header, uint64(s.blockSize))

	buf := append([]byte{}, header...)
	buf = append(buf, crc.Checksum8(header))

	if s.numStrings > 0 {
		words := sequenceWords(s.offsets)
		buf = append(buf, bitseq.Write(s.offsets.BitsPerEntry(), s.offsets.Len(), words)...)
	}

	buf = append(buf, s.packed...)
	sum := crc.Checksum32(s.packed)
	buf = append(buf, byte(sum), byte(sum>>8), byte(sum>>16), byte(sum>>24))
	return buf
}

func sequenceWords(seq *bitseq.Sequence) []uint64 {
	values := make([]uint64, seq.Len())
	for i := range values {
		values[i] = seq.Get(i)
	}
	return bitseq.PackBits(seq.BitsPerEntry(), values)
}
