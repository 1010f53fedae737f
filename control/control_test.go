package control

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func TestReadWriteRoundtrip(t *testing.T) {
	props := map[string]string{"order": "1", "numTriples": "328"}
	buf := Write(Triples, FormatTriples, props)

	info, err := Read(bufio.NewReader(bytes.NewReader(buf)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.Type != Triples {
		t.Fatalf("Type = %v, want Triples", info.Type)
	}
	if info.Format != FormatTriples {
		t.Fatalf("Format = %q, want %q", info.Format, FormatTriples)
	}
	for k, v := range props {
		got, ok := info.Prop(k)
		if !ok || got != v {
			t.Fatalf("Prop(%q) = %q, %v; want %q, true", k, got, ok, v)
		}
	}
}

func TestReadBadCookie(t *testing.T) {
	buf := Write(Global, FormatGlobal, nil)
	buf[0] = 'X'
	if _, err := Read(bufio.NewReader(bytes.NewReader(buf))); !errors.Is(err, ErrBadCookie) {
		t.Fatalf("Read: got %v, want ErrBadCookie", err)
	}
}

func TestReadBadControlType(t *testing.T) {
	buf := Write(Global, FormatGlobal, nil)
	buf[4] = 0xff
	if _, err := Read(bufio.NewReader(bytes.NewReader(buf))); !errors.Is(err, ErrBadControlType) {
		t.Fatalf("Read: got %v, want ErrBadControlType", err)
	}
}

func TestReadCorruptChecksum(t *testing.T) {
	buf := Write(Header, FormatGlobal, map[string]string{"length": "10"})
	buf[len(buf)-1] ^= 0xff
	if _, err := Read(bufio.NewReader(bytes.NewReader(buf))); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Read: got %v, want ErrCorrupt", err)
	}
}

func TestRequireFormatAndType(t *testing.T) {
	info := &Info{Type: Dictionary, Format: FormatDictionary}
	if err := info.RequireFormat(FormatDictionary); err != nil {
		t.Fatalf("RequireFormat: %v", err)
	}
	if err := info.RequireFormat("triplesList"); !errors.Is(err, ErrBadFormat) {
		t.Fatalf("RequireFormat mismatch: got %v, want ErrBadFormat", err)
	}
	if err := info.RequireType(Dictionary); err != nil {
		t.Fatalf("RequireType: %v", err)
	}
	if err := info.RequireType(Triples); !errors.Is(err, ErrBadControlType) {
		t.Fatalf("RequireType mismatch: got %v, want ErrBadControlType", err)
	}
}

func TestPropUint(t *testing.T) {
	info := &Info{Properties: map[string]string{"numTriples": "328"}}
	n, err := info.PropUint("numTriples")
	if err != nil || n != 328 {
		t.Fatalf("PropUint = %d, %v; want 328, nil", n, err)
	}
	if _, err := info.PropUint("missing"); err == nil {
		t.Fatal("PropUint(missing): want error")
	}
}
