package rdf

import (
	"fmt"
	"io"
)

// Decoder is a streaming decoder for RDF turtle/n-triples.
type Decoder struct {
	scanner *scanner

	// state
	base     string         // base URI
	ns       map[string]URI // prefixes
	tr       Triple         // parsed triple to be returned
	keepSubj bool           // keep subject in next call to Decode()
	keepPred bool           // keep predicate in next call to Decode()

	// Skolemize creates an URI given a blank node identifier
	Skolemize func(s string) URI

	// Base is the initial base URI. It will be changed by any
	// base directives in the stream.
	Base URI
}

// NewDecoder returns a new Decoder over the given stream.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{scanner: newScanner(r)}
}

// Decode returns the next Triple in the input stream, or an error. The error
// io.EOF signifies the end of the stream.
func (d *Decoder) Decode() (Triple, error) {

	if !d.keepSubj {
		if err := d.parseSubject(); err != nil {
			return d.tr, err
		}
	}

	if !d.keepPred {
		if err := d.parsePredicate(); err != nil {
			return d.tr, err
		}
	}

	if err := d.parseObject(); err != nil {
		return d.tr, err
	}

	return d.tr, nil
}

func (d *Decoder) parseSubject() (err error) {
	d.tr.Subj, err = d.parseURI()
	return err
}

func (d *Decoder) parsePredicate() (err error) {
	d.tr.Pred, err = d.parseURI()
	return err
}

func (d *Decoder) parseURI() (uri URI, err error) {
	tok := d.scanner.Scan()
	for tok.Type == tokenEOL {
		tok = d.scanner.Scan()
	}
	switch tok.Type {
	case tokenURI:
		uri = NewURI(tok.Text)
	case tokenEOF:
		err = io.EOF
	}
	return uri, err
}

func (d *Decoder) parseObject() error {
	tok := d.scanner.Scan()
	switch tok.Type {
	case tokenURI:
		d.tr.Obj = NewURI(tok.Text)
		return d.finishStatement(d.scanner.Scan())
	case tokenLiteral:
		return d.parseLiteralObject(tok.Text)
	case tokenEOF:
		return io.EOF
	default:
		return fmt.Errorf("%d:%d expected URI or literal, got %q (%s)",
			d.scanner.Row, d.scanner.Col, tok.Text, tok.Type)
	}
}

// parseLiteralObject handles everything that can follow a literal's
// quoted value: a language tag, a datatype marker, or nothing at all.
func (d *Decoder) parseLiteralObject(value string) error {
	next := d.scanner.Scan()
	switch next.Type {
	case tokenLangTag:
		d.tr.Obj = NewLangLiteral(value, next.Text)
		return d.finishStatement(d.scanner.Scan())
	case tokenTypeMarker:
		dt := d.scanner.Scan()
		switch dt.Type {
		case tokenURI:
			d.tr.Obj = NewTypedLiteral(value, NewURI(dt.Text))
			return d.finishStatement(d.scanner.Scan())
		case tokenEOF:
			return io.EOF
		default:
			return fmt.Errorf("%d:%d expected datatype URI, got %q (%s)",
				d.scanner.Row, d.scanner.Col, dt.Text, dt.Type)
		}
	default:
		d.tr.Obj = NewLiteral(value)
		return d.finishStatement(next)
	}
}

// finishStatement consumes the token ending a triple: a dot closes
// the statement, a semicolon keeps the subject for the next predicate,
// a comma keeps both subject and predicate for the next object.
func (d *Decoder) finishStatement(tok token) error {
	switch tok.Type {
	case tokenDot:
		d.keepSubj = false
		d.keepPred = false
		return nil
	case tokenSemicolon:
		d.keepSubj = true
		d.keepPred = false
		return nil
	case tokenComma:
		d.keepSubj = true
		d.keepPred = true
		return nil
	case tokenEOF:
		return io.EOF
	default:
		return fmt.Errorf("%d:%d expected dot, semicolon or comma, got %q (%s)",
			d.scanner.Row, d.scanner.Col, tok.Text, tok.Type)
	}
}

// DecodeAll parses the entire stream and returns the triples as a Graph.
func (d *Decoder) DecodeAll() (*Graph, error) {
	g := NewGraph()
	for {
		tr, err := d.Decode()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		g.Insert(tr)
	}
}
