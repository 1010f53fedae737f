package vbyte

import (
	"bytes"
	"testing"
	"testing/quick"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 16383, 16384, 1<<32 - 1, 1<<64 - 1}
	for _, n := range cases {
		buf := Encode(nil, n)
		got, err := Decode(bytes.NewReader(buf))
		if err != nil {
			t.Fatalf("Decode(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("Decode(Encode(%d)) = %d", n, got)
		}
	}
}

func TestEncodeDecodeRoundtripQuick(t *testing.T) {
	f := func(n uint64) bool {
		buf := Encode(nil, n)
		got, err := Decode(bytes.NewReader(buf))
		return err == nil && got == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDecodeBytesMatchesDecode(t *testing.T) {
	f := func(n uint64, prefix []byte) bool {
		buf := append(append([]byte{}, prefix...), Encode(nil, n)...)
		got, nbytes, err := DecodeBytes(buf, len(prefix))
		if err != nil || got != n {
			return false
		}
		return nbytes == len(buf)-len(prefix)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDecodeTruncatedIsError(t *testing.T) {
	buf := Encode(nil, 1<<40)
	for i := 0; i < len(buf)-1; i++ {
		if _, err := Decode(bytes.NewReader(buf[:i])); err == nil {
			t.Fatalf("Decode on truncated input (%d bytes) did not error", i)
		}
	}
}

func TestDecodeOverflow(t *testing.T) {
	// 11 continuation bytes (high bit clear) never terminate within maxBytes.
	buf := make([]byte, maxBytes+1)
	for i := range buf {
		buf[i] = 0x7f
	}
	if _, err := Decode(bytes.NewReader(buf)); err != ErrOverflow {
		t.Fatalf("Decode overlong sequence: got %v, want ErrOverflow", err)
	}
}

func TestEncodeSingleByte(t *testing.T) {
	buf := Encode(nil, 42)
	if len(buf) != 1 || buf[0] != 42|0x80 {
		t.Fatalf("Encode(42) = %v", buf)
	}
}
