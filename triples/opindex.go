package triples

import (
	"sort"

	"github.com/boutros/hdt/internal/bitmap"
	"github.com/boutros/hdt/internal/bitseq"
)

// OpIndex is the derived object→position index: for every object id, the
// positions in seqZ where that object occurs, concatenated into one
// sequence with a boundary bitmap marking each object's bucket start.
type OpIndex struct {
	Seq    *bitseq.Sequence
	Bitmap *bitmap.Bitmap
}

// Find returns the first index into Seq belonging to object o (1-based).
func (idx *OpIndex) Find(o int) int {
	return idx.Bitmap.Select1(o - 1)
}

// Last returns the last index into Seq belonging to object o (1-based).
func (idx *OpIndex) Last(o int) int {
	if next := idx.Bitmap.Select1(o); next != -1 {
		return next - 1
	}
	return idx.Seq.Len() - 1
}

// SizeInBytes returns the approximate live memory footprint.
func (idx *OpIndex) SizeInBytes() int {
	return idx.Seq.SizeInBytes() + idx.Bitmap.SizeInBytes()
}

// buildOpIndex scans seqZ once, bucketing every position by its stored
// object id, and concatenates the buckets (ascending within each, since
// a single linear scan already visits positions in increasing order)
// into one sequence with a boundary bitmap marking each bucket's start.
func buildOpIndex(seqZ *bitseq.Sequence) *OpIndex {
	n := seqZ.Len()
	var maxObject uint64
	for i := 0; i < n; i++ {
		if v := seqZ.Get(i); v > maxObject {
			maxObject = v
		}
	}

	buckets := make([][]int, maxObject)
	for i := 0; i < n; i++ {
		o := seqZ.Get(i)
		if o == 0 {
			continue
		}
		buckets[o-1] = append(buckets[o-1], i)
	}

	positions := make([]uint64, 0, n)
	boundaries := make([]bool, 0, n)
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		sort.Ints(bucket)
		for i, pos := range bucket {
			positions = append(positions, uint64(pos))
			boundaries = append(boundaries, i == 0)
		}
	}

	bitsPerEntry := bitseq.BitsFor(uint64(n))
	words := bitseq.PackBits(bitsPerEntry, positions)
	seq := bitseq.New(bitsPerEntry, len(positions), words)
	bm := bitmap.New(bitmap.FromBools(boundaries), len(boundaries))

	return &OpIndex{Seq: seq, Bitmap: bm}
}
