package hdt

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/boutros/hdt/control"
	"github.com/boutros/hdt/dict"
	"github.com/boutros/hdt/triples"
)

// Graph is a loaded, queryable HDT dataset.
type Graph struct {
	header  *Header
	dict    *dict.FourSectDict
	triples *triples.BitmapTriples
	log     *log.Logger
}

// Load reads a complete HDT byte stream from r: the global control
// block, the header, the four-section dictionary and the bitmap-
// triples index, in that order, failing on the first error. r is
// wrapped in a single bufio.Reader that is threaded through every
// section parser, since each one consumes exactly its own bytes and
// leaves the stream positioned at the start of the next section.
func Load(r io.Reader, opts ...LoadOption) (*Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	br := bufio.NewReader(r)

	gci, err := control.Read(br)
	if err != nil {
		return nil, newLoadError("global", KindIO, err)
	}
	if err := gci.RequireType(control.Global); err != nil {
		return nil, newLoadError("global", KindBadControlType, err)
	}
	if err := gci.RequireFormat(control.FormatGlobal); err != nil {
		return nil, newLoadError("global", KindBadFormat, err)
	}

	// readHeader already confirms the declared length lands exactly on
	// the dictionary's control block; ValidateHeader additionally checks
	// that the bytes within that boundary are well-formed N-Triples,
	// which costs a full parse and so is opt-in.
	header, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if cfg.validateHeader {
		if _, err := header.Graph(); err != nil {
			return nil, newLoadError("header", KindBadProperty, fmt.Errorf("header body does not parse as N-Triples: %w", err))
		}
	}

	fsd, err := dict.ReadFourSectDict(br)
	if err != nil {
		return nil, newLoadError("dictionary", KindIO, err)
	}

	bt, err := triples.Read(br)
	if err != nil {
		return nil, newLoadError("triples", KindIO, err)
	}

	return &Graph{
		header:  header,
		dict:    fsd,
		triples: bt,
		log:     cfg.logger,
	}, nil
}

// Header returns the dataset's header metadata.
func (g *Graph) Header() *Header { return g.header }

// SizeInBytes returns the approximate live memory footprint of the
// loaded dictionary and triples index.
func (g *Graph) SizeInBytes() int {
	return g.dict.SizeInBytes() + g.triples.SizeInBytes()
}

// NumTriples returns the number of triples in the graph.
func (g *Graph) NumTriples() int { return g.triples.Len() }

// StringTriple is a triple expressed as its three RDF terms.
type StringTriple struct {
	Subject, Predicate, Object string
}

// TripleIterator yields triples translated back to RDF terms.
type TripleIterator struct {
	g     *Graph
	it    triples.Iterator
	cache TripleCache
}

// Next advances the iterator. A term that fails to resolve (a
// corrupted or truncated dictionary section) is logged and the
// offending triple is skipped rather than failing the whole scan.
func (ti *TripleIterator) Next() (StringTriple, bool) {
	for {
		id, ok := ti.it.Next()
		if !ok {
			return StringTriple{}, false
		}
		s, err := ti.cache.lookup(ti.g.dict, dict.Subject, id.S)
		if err != nil {
			ti.g.log.Printf("resolving subject id %d: %v", id.S, err)
			continue
		}
		p, err := ti.cache.lookup(ti.g.dict, dict.Predicate, id.P)
		if err != nil {
			ti.g.log.Printf("resolving predicate id %d: %v", id.P, err)
			continue
		}
		o, err := ti.cache.lookup(ti.g.dict, dict.Object, id.O)
		if err != nil {
			ti.g.log.Printf("resolving object id %d: %v", id.O, err)
			continue
		}
		return StringTriple{Subject: s, Predicate: p, Object: o}, true
	}
}

// Triples returns an iterator over every triple matching the given
// pattern; an empty string in any position means "unbound". A fixed
// term that isn't in the dictionary yields an iterator with no results,
// since it can't possibly match any stored triple.
func (g *Graph) Triples(subject, predicate, object string) *TripleIterator {
	var pat triples.Pattern

	if subject != "" {
		pat.Subject = g.dict.StringToID(subject, dict.Subject)
		if pat.Subject == 0 {
			return &TripleIterator{g: g, it: triples.Empty()}
		}
	}
	if predicate != "" {
		pat.Predicate = g.dict.StringToID(predicate, dict.Predicate)
		if pat.Predicate == 0 {
			return &TripleIterator{g: g, it: triples.Empty()}
		}
	}
	if object != "" {
		pat.Object = g.dict.StringToID(object, dict.Object)
		if pat.Object == 0 {
			return &TripleIterator{g: g, it: triples.Empty()}
		}
	}

	return &TripleIterator{g: g, it: triples.Query(g.triples, pat)}
}

// SubjectIterator yields subject terms translated back from ids.
type SubjectIterator struct {
	g     *Graph
	it    triples.Iterator
	cache TripleCache
}

// Next advances the iterator, skipping (and logging) any subject id
// that fails to resolve.
func (si *SubjectIterator) Next() (string, bool) {
	for {
		id, ok := si.it.Next()
		if !ok {
			return "", false
		}
		s, err := si.cache.lookup(si.g.dict, dict.Subject, id.S)
		if err != nil {
			si.g.log.Printf("resolving subject id %d: %v", id.S, err)
			continue
		}
		return s, true
	}
}

// SubjectsWithPO returns every subject that participates in a triple
// with the given predicate and object, using the ?PO pattern iterator
// directly rather than building full triples.
func (g *Graph) SubjectsWithPO(predicate, object string) *SubjectIterator {
	p := g.dict.StringToID(predicate, dict.Predicate)
	o := g.dict.StringToID(object, dict.Object)
	if p == 0 || o == 0 {
		return &SubjectIterator{g: g, it: triples.Empty()}
	}
	pat := triples.Pattern{Predicate: p, Object: o}
	return &SubjectIterator{g: g, it: triples.Query(g.triples, pat)}
}
