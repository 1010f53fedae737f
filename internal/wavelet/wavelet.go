// Package wavelet implements a wavelet matrix: a level-decomposed
// representation of a sequence over a small integer alphabet, supporting
// access, rank and select by value in O(levels) time.
package wavelet

import "github.com/boutros/hdt/internal/bitmap"

// Matrix is an immutable wavelet matrix built over a fixed-width
// integer alphabet [0, 2^levels).
type Matrix struct {
	bitmaps []*bitmap.Bitmap // one per level, most significant bit first
	zeros   []int            // count of zeros at each level
	levels  int
	n       int
}

// Build constructs a Matrix over values, each assumed to fit in levels
// bits. levels must be at least 1.
func Build(values []uint64, levels int) *Matrix {
	n := len(values)
	seq := append([]uint64(nil), values...)
	bitmaps := make([]*bitmap.Bitmap, levels)
	zeros := make([]int, levels)

	for level := 0; level < levels; level++ {
		bitPos := uint(levels - 1 - level)
		bitsSlice := make([]bool, n)
		for i, v := range seq {
			bitsSlice[i] = (v>>bitPos)&1 == 1
		}
		bm := bitmap.New(bitmap.FromBools(bitsSlice), n)
		bitmaps[level] = bm
		zeros[level] = n - bm.Ones()

		next := make([]uint64, 0, n)
		for i, v := range seq {
			if !bitsSlice[i] {
				next = append(next, v)
			}
		}
		for i, v := range seq {
			if bitsSlice[i] {
				next = append(next, v)
			}
		}
		seq = next
	}

	return &Matrix{bitmaps: bitmaps, zeros: zeros, levels: levels, n: n}
}

// Len returns the number of elements in the sequence.
func (m *Matrix) Len() int { return m.n }

// Access returns the value at position i.
func (m *Matrix) Access(i int) uint64 {
	pos := i
	var v uint64
	for level := 0; level < m.levels; level++ {
		bm := m.bitmaps[level]
		bit := bm.Access(pos)
		v <<= 1
		if bit {
			v |= 1
			pos = m.zeros[level] + bm.Rank1(pos)
		} else {
			pos = pos - bm.Rank1(pos)
		}
	}
	return v
}

// Rank returns the number of occurrences of v in positions [0, i).
func (m *Matrix) Rank(i int, v uint64) int {
	start, end := 0, i
	for level := 0; level < m.levels; level++ {
		bitPos := uint(m.levels - 1 - level)
		bm := m.bitmaps[level]
		if (v>>bitPos)&1 == 1 {
			start = m.zeros[level] + bm.Rank1(start)
			end = m.zeros[level] + bm.Rank1(end)
		} else {
			start = start - bm.Rank1(start)
			end = end - bm.Rank1(end)
		}
	}
	return end - start
}

// Select returns the 0-based position of the k-th occurrence (0-based)
// of v, or -1 if there are fewer than k+1 occurrences.
func (m *Matrix) Select(k int, v uint64) int {
	// Descend to find the offset, within the bottom-level permuted
	// array, where the run of v begins.
	pos := 0
	for level := 0; level < m.levels; level++ {
		bitPos := uint(m.levels - 1 - level)
		bm := m.bitmaps[level]
		if (v>>bitPos)&1 == 1 {
			pos = m.zeros[level] + bm.Rank1(pos)
		} else {
			pos = pos - bm.Rank1(pos)
		}
	}
	idx := pos + k
	if idx < 0 || idx >= m.n {
		return -1
	}

	// Invert the descent, bottom level to top, to recover the original
	// index.
	for level := m.levels - 1; level >= 0; level-- {
		bitPos := uint(m.levels - 1 - level)
		bm := m.bitmaps[level]
		if (v>>bitPos)&1 == 1 {
			idx = bm.Select1(idx - m.zeros[level])
		} else {
			idx = bm.Select0(idx)
		}
		if idx < 0 {
			return -1
		}
	}
	return idx
}

// SizeInBytes returns the approximate live memory footprint.
func (m *Matrix) SizeInBytes() int {
	total := 24
	for _, bm := range m.bitmaps {
		total += bm.SizeInBytes()
	}
	return total
}
