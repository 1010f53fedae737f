package wavelet

import (
	"math/rand"
	"testing"
)

func TestAccess(t *testing.T) {
	values := []uint64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	m := Build(values, 4)
	for i, want := range values {
		if got := m.Access(i); got != want {
			t.Fatalf("Access(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestRank(t *testing.T) {
	values := []uint64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	m := Build(values, 4)

	for _, v := range []uint64{1, 3, 5, 9, 7} {
		for i := 0; i <= len(values); i++ {
			want := 0
			for j := 0; j < i; j++ {
				if values[j] == v {
					want++
				}
			}
			if got := m.Rank(i, v); got != want {
				t.Fatalf("Rank(%d, %d) = %d, want %d", i, v, got, want)
			}
		}
	}
}

func TestSelect(t *testing.T) {
	values := []uint64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	m := Build(values, 4)

	for _, v := range []uint64{1, 3, 5, 9} {
		var positions []int
		for i, x := range values {
			if x == v {
				positions = append(positions, i)
			}
		}
		for k, want := range positions {
			if got := m.Select(k, v); got != want {
				t.Fatalf("Select(%d, %d) = %d, want %d", k, v, got, want)
			}
		}
		if got := m.Select(len(positions), v); got != -1 {
			t.Fatalf("Select(%d, %d) = %d, want -1", len(positions), v, got)
		}
	}
}

func TestAccessRankSelectRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 500
	levels := 6
	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(rng.Intn(1 << levels))
	}
	m := Build(values, levels)

	for i, want := range values {
		if got := m.Access(i); got != want {
			t.Fatalf("Access(%d) = %d, want %d", i, got, want)
		}
	}

	counts := make(map[uint64]int)
	for _, v := range values {
		counts[v]++
	}
	for v, count := range counts {
		for k := 0; k < count; k++ {
			pos := m.Select(k, v)
			if pos < 0 || values[pos] != v {
				t.Fatalf("Select(%d, %d) = %d, values[pos] = %v", k, v, pos, values)
			}
		}
	}
}
