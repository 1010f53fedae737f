// Package triples implements the bitmap-triples index: the SPO-ordered
// adjacency structure built from bY/bZ boundary bitmaps and seqY/seqZ
// value sequences, a wavelet matrix over predicate ids for O(1) rank/
// select, a derived object→position index, and the eight triple-pattern
// iterators.
package triples

import (
	"bufio"
	"fmt"

	"github.com/boutros/hdt/control"
	"github.com/boutros/hdt/internal/bitmap"
	"github.com/boutros/hdt/internal/bitseq"
	"github.com/boutros/hdt/internal/wavelet"
)

// BitmapTriples is the loaded, queryable bitmap-triples index.
type BitmapTriples struct {
	order   Order
	bY      *bitmap.Bitmap
	adjZ    *AdjList
	wY      *wavelet.Matrix
	opIndex *OpIndex
}

// Order returns the coordinate order the index was stored in.
func (t *BitmapTriples) Order() Order { return t.order }

// Len returns the number of stored triples.
func (t *BitmapTriples) Len() int { return t.adjZ.Len() }

// FindY returns the first position in wY belonging to the subject with
// 0-based index s (subject id s+1); FindY(0) is 0 (the start of the
// whole index).
func (t *BitmapTriples) FindY(s int) int {
	if s == 0 {
		return 0
	}
	return t.bY.Select1(s-1) + 1
}

// LastY returns the last position in wY belonging to the subject with
// 0-based index s (subject id s+1).
func (t *BitmapTriples) LastY(s int) int {
	return t.FindY(s+1) - 1
}

// SearchY binary-searches the strictly increasing predicate run
// [FindY(s), LastY(s)] of wY for p, returning its position.
func (t *BitmapTriples) SearchY(s int, p uint64) (int, bool) {
	lo, hi := t.FindY(s), t.LastY(s)
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := t.wY.Access(mid)
		switch {
		case v == p:
			return mid, true
		case v < p:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// CoordToTriple permutes the stored (x, y, z) coordinates to
// (subject, predicate, object), rejecting any coordinate that is 0
// (denoting a non-existent term).
func (t *BitmapTriples) CoordToTriple(x, y, z int) (s, p, o int, err error) {
	if x == 0 || y == 0 || z == 0 {
		return 0, 0, 0, fmt.Errorf("triples: (%d,%d,%d): no component of a triple may be 0", x, y, z)
	}
	s, p, o = coordToTriple(t.order, x, y, z)
	return s, p, o, nil
}

// SizeInBytes returns the approximate live memory footprint.
func (t *BitmapTriples) SizeInBytes() int {
	size := 24
	size += t.bY.SizeInBytes()
	size += t.adjZ.SizeInBytes()
	size += t.wY.SizeInBytes()
	size += t.opIndex.SizeInBytes()
	return size
}

// Read parses the triples control block (requiring the triplesBitmap
// format and an order property) followed by bY, bZ, seqY, seqZ, in that
// order, and assembles the wavelet matrix and object→position index.
// br must be the same buffered reader used for the whole stream.
func Read(br *bufio.Reader) (*BitmapTriples, error) {
	ci, err := control.Read(br)
	if err != nil {
		return nil, fmt.Errorf("triples: reading control block: %w", err)
	}
	if ci.Format == "<http://purl.org/HDT/hdt#triplesList>" {
		return nil, fmt.Errorf("triples: %w: triplesList is not supported", ErrBadFormat)
	}
	if err := ci.RequireFormat(control.FormatTriples); err != nil {
		return nil, fmt.Errorf("triples: %w", ErrBadFormat)
	}

	orderProp, err := ci.PropUint("order")
	if err != nil {
		return nil, fmt.Errorf("triples: %w: %v", ErrBadProperty, err)
	}
	order, err := ParseOrder(orderProp)
	if err != nil {
		return nil, err
	}
	if order != OrderSPO {
		return nil, fmt.Errorf("triples: %w: order %s is not supported for reading", ErrBadProperty, order)
	}

	bY, err := bitmap.Read(br)
	if err != nil {
		return nil, fmt.Errorf("triples: reading bY: %w", err)
	}
	bZ, err := bitmap.Read(br)
	if err != nil {
		return nil, fmt.Errorf("triples: reading bZ: %w", err)
	}
	seqY, err := bitseq.Read(br)
	if err != nil {
		return nil, fmt.Errorf("triples: reading seqY: %w", err)
	}

	wY := buildWaveletY(seqY)

	seqZ, err := bitseq.Read(br)
	if err != nil {
		return nil, fmt.Errorf("triples: reading seqZ: %w", err)
	}

	adjZ := NewAdjList(seqZ, bZ)
	opIndex := buildOpIndex(seqZ)

	return &BitmapTriples{
		order:   order,
		bY:      bY,
		adjZ:    adjZ,
		wY:      wY,
		opIndex: opIndex,
	}, nil
}

func buildWaveletY(seqY *bitseq.Sequence) *wavelet.Matrix {
	n := seqY.Len()
	values := make([]uint64, n)
	for i := 0; i < n; i++ {
		values[i] = seqY.Get(i)
	}
	return wavelet.Build(values, seqY.BitsPerEntry())
}
