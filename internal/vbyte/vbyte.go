// Package vbyte implements the variable-length unsigned integer encoding
// used throughout the HDT binary format.
package vbyte

import (
	"bufio"
	"fmt"
	"io"
)

// maxBytes is the largest number of bytes a 64-bit value can ever encode to:
// ceil(64/7) 7-bit chunks. Any longer sequence without a terminator means
// the value cannot fit in a uint64.
const maxBytes = 10

// ErrOverflow is returned when a decoded value would not fit in a uint64.
var ErrOverflow = fmt.Errorf("vbyte: value overflows 64 bits")

// Decode reads a VByte-encoded unsigned integer from r.
//
// The encoding is little-endian, 7 payload bits per byte; the byte whose
// high bit is set terminates the sequence and contributes its low 7 bits as
// the final chunk. Decoding never cross-checks whether a byte count beyond
// maxBytes "should" have terminated sooner for a smaller value - it simply
// accumulates until it sees a high bit set, or gives up past maxBytes. This
// mirrors the reference decoder verbatim, a legacy detail preserved because
// every HDT file in existence was produced against it.
func Decode(r io.ByteReader) (uint64, error) {
	var n uint64
	var shift uint
	var nbytes int

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		nbytes++
		if nbytes > maxBytes {
			return 0, ErrOverflow
		}
		n |= uint64(b&0x7f) << shift
		if b&0x80 != 0 {
			return n, nil
		}
		shift += 7
	}
}

// DecodeBytes decodes a VByte-encoded value starting at offset in data,
// returning the value and the number of bytes consumed.
func DecodeBytes(data []byte, offset int) (uint64, int, error) {
	var n uint64
	var shift uint
	i := offset
	for {
		if i >= len(data) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := data[i]
		i++
		if i-offset > maxBytes {
			return 0, 0, ErrOverflow
		}
		n |= uint64(b&0x7f) << shift
		if b&0x80 != 0 {
			return n, i - offset, nil
		}
		shift += 7
	}
}

// Encode appends the VByte encoding of n to dst and returns the result.
//
// Chunks of 7 bits are emitted little-endian until n fits in 7 bits; that
// final chunk is OR'd with 0x80 to mark the end of the sequence.
func Encode(dst []byte, n uint64) []byte {
	for n > 0x7f {
		dst = append(dst, byte(n&0x7f))
		n >>= 7
	}
	return append(dst, byte(n)|0x80)
}

// NewReader wraps r so it satisfies io.ByteReader, if it doesn't already.
func NewReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
