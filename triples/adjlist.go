package triples

import (
	"github.com/boutros/hdt/internal/bitmap"
	"github.com/boutros/hdt/internal/bitseq"
)

// AdjList pairs a bit-packed value sequence with a boundary bitmap: a 1
// at position i marks the last entry of a group. It backs both the
// seqZ/bZ pair (adjZ) and, conceptually, the seqY/bY pair.
type AdjList struct {
	Seq    *bitseq.Sequence
	Bitmap *bitmap.Bitmap
}

// NewAdjList pairs seq and bm into an AdjList.
func NewAdjList(seq *bitseq.Sequence, bm *bitmap.Bitmap) *AdjList {
	return &AdjList{Seq: seq, Bitmap: bm}
}

// Len returns the number of entries in the sequence.
func (a *AdjList) Len() int { return a.Seq.Len() }

// Get returns the value stored at position i.
func (a *AdjList) Get(i int) uint64 { return a.Seq.Get(i) }

// AtLastSibling reports whether position i is the last entry of its
// group, i.e. whether the boundary bitmap has a 1 there.
func (a *AdjList) AtLastSibling(i int) bool { return a.Bitmap.Access(i) }

// Find returns the first position belonging to group pos (0-based):
// pos == 0 maps to 0 (the start of the whole sequence); otherwise the
// position immediately after the pos-th set bit of the boundary bitmap.
func (a *AdjList) Find(pos int) int {
	if pos == 0 {
		return 0
	}
	return a.Bitmap.Select1(pos-1) + 1
}

// Last returns the last position belonging to group pos (0-based).
func (a *AdjList) Last(pos int) int {
	return a.Find(pos+1) - 1
}

// Search performs a binary search for value within group pos's range
// [Find(pos), Last(pos)], relying on the invariant that entries within
// a group are strictly increasing. It returns the position and true if
// found.
func (a *AdjList) Search(pos int, value uint64) (int, bool) {
	lo, hi := a.Find(pos), a.Last(pos)
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := a.Seq.Get(mid)
		switch {
		case v == value:
			return mid, true
		case v < value:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// SizeInBytes returns the approximate live memory footprint.
func (a *AdjList) SizeInBytes() int {
	return a.Seq.SizeInBytes() + a.Bitmap.SizeInBytes()
}
