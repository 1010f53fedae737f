package hdt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/boutros/hdt/control"
	"github.com/boutros/hdt/rdf"
)

// headerFormat is the only header body syntax this reader understands.
const headerFormat = "ntriples"

// Header holds the dataset metadata that precedes the dictionary and
// triples sections: a small N-Triples document describing the graph
// (its source, publisher, statistics, and so on).
type Header struct {
	Length int
	Body   []byte
}

// Graph parses the header body as N-Triples, for callers that want to
// inspect the dataset metadata as terms rather than raw bytes. It is
// never required for querying the loaded graph.
func (h *Header) Graph() (*rdf.Graph, error) {
	dec := rdf.NewDecoder(bytes.NewReader(h.Body))
	return dec.DecodeAll()
}

// readHeader parses the header control block and its length-delimited
// N-Triples body. The reader must be positioned directly after the
// global control block.
func readHeader(br *bufio.Reader) (*Header, error) {
	ci, err := control.Read(br)
	if err != nil {
		return nil, newLoadError("header", KindIO, err)
	}
	if err := ci.RequireType(control.Header); err != nil {
		return nil, newLoadError("header", KindBadControlType, err)
	}
	if ci.Format != headerFormat {
		return nil, newLoadError("header", KindBadFormat,
			fmt.Errorf("header format %q, want %q", ci.Format, headerFormat))
	}

	length, err := ci.PropUint("length")
	if err != nil {
		return nil, newLoadError("header", KindBadProperty, err)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, newLoadError("header", KindBadProperty, fmt.Errorf("declared length %d disagrees with available bytes: %w", length, err))
	}

	// A length within bounds of the stream isn't necessarily the right
	// length: it only proves there were enough bytes left to read, not
	// that those were the header's bytes. The dictionary control block
	// that must immediately follow gives an independent check: its
	// cookie has to start exactly where the declared length says the
	// header body ends, or the stream has already drifted.
	next, err := br.Peek(len(control.Cookie))
	if err != nil || string(next) != control.Cookie {
		return nil, newLoadError("header", KindBadProperty,
			fmt.Errorf("declared length %d does not land on the following control block", length))
	}

	return &Header{Length: int(length), Body: body}, nil
}
