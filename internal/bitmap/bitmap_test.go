package bitmap

import (
	"bufio"
	"bytes"
	"math/rand"
	"testing"
	"testing/quick"
)

func bitsFromPositions(n int, ones map[int]bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = ones[i]
	}
	return out
}

func TestAccessRankSelect(t *testing.T) {
	// bits: 1 0 1 1 0 0 1 0  -> positions of ones: 0, 2, 3, 6
	raw := []bool{true, false, true, true, false, false, true, false}
	bm := New(FromBools(raw), len(raw))

	for i, want := range raw {
		if got := bm.Access(i); got != want {
			t.Fatalf("Access(%d) = %v, want %v", i, got, want)
		}
	}

	rankCases := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3, 8: 4}
	for i, want := range rankCases {
		if got := bm.Rank1(i); got != want {
			t.Fatalf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}

	selectCases := map[int]int{0: 0, 1: 2, 2: 3, 3: 6}
	for k, want := range selectCases {
		if got := bm.Select1(k); got != want {
			t.Fatalf("Select1(%d) = %d, want %d", k, got, want)
		}
	}

	if got := bm.Select1(4); got != -1 {
		t.Fatalf("Select1(4) = %d, want -1", got)
	}
	if got := bm.Ones(); got != 4 {
		t.Fatalf("Ones() = %d, want 4", got)
	}
}

func TestSelect0(t *testing.T) {
	raw := []bool{true, false, true, true, false, false, true, false}
	bm := New(FromBools(raw), len(raw))
	// zeros at positions: 1, 4, 5, 7
	zeroCases := map[int]int{0: 1, 1: 4, 2: 5, 3: 7}
	for k, want := range zeroCases {
		if got := bm.Select0(k); got != want {
			t.Fatalf("Select0(%d) = %d, want %d", k, got, want)
		}
	}
	if got := bm.Select0(4); got != -1 {
		t.Fatalf("Select0(4) = %d, want -1", got)
	}
}

func TestRankSelectLargeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 10000
	raw := make([]bool, n)
	var positions []int
	for i := range raw {
		if rng.Intn(3) == 0 {
			raw[i] = true
			positions = append(positions, i)
		}
	}
	bm := New(FromBools(raw), n)

	if got := bm.Ones(); got != len(positions) {
		t.Fatalf("Ones() = %d, want %d", got, len(positions))
	}
	for k, pos := range positions {
		if got := bm.Select1(k); got != pos {
			t.Fatalf("Select1(%d) = %d, want %d", k, got, pos)
		}
	}
	// Rank1(i) must equal the count of positions < i.
	for _, i := range []int{0, 1, 500, 5000, 9999, 10000} {
		want := 0
		for _, p := range positions {
			if p < i {
				want++
			}
		}
		if got := bm.Rank1(i); got != want {
			t.Fatalf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	raw := []bool{true, true, false, true, false, false, false, true, true}
	buf := Write(FromBools(raw), len(raw))

	bm, err := Read(bufio.NewReader(bytes.NewReader(buf)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if bm.Len() != len(raw) {
		t.Fatalf("Len() = %d, want %d", bm.Len(), len(raw))
	}
	for i, want := range raw {
		if got := bm.Access(i); got != want {
			t.Fatalf("Access(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestReadCorruptPayload(t *testing.T) {
	raw := []bool{true, false, true, true}
	buf := Write(FromBools(raw), len(raw))
	buf[len(buf)-1] ^= 0xff
	if _, err := Read(bufio.NewReader(bytes.NewReader(buf))); err == nil {
		t.Fatal("Read: want error on corrupted crc32")
	}
}

// TestRankSelectInvariantsQuick checks the two identities any rank/select
// index must satisfy for every random bitstring: rank1 counts strictly
// fewer-than-i set bits, and select1 is rank1's inverse at every position
// a bit is actually set.
func TestRankSelectInvariantsQuick(t *testing.T) {
	f := func(seed int64, n uint16) bool {
		size := int(n%500) + 1
		rng := rand.New(rand.NewSource(seed))
		raw := make([]bool, size)
		for i := range raw {
			raw[i] = rng.Intn(2) == 0
		}
		bm := New(FromBools(raw), size)

		want := 0
		for i := 0; i <= size; i++ {
			if bm.Rank1(i) != want {
				return false
			}
			if i < size && raw[i] {
				if bm.Select1(want) != i {
					return false
				}
				want++
			}
		}
		return bm.Ones() == want
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
