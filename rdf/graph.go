package rdf

import (
	"fmt"
	"sort"
)

// Triple represents a RDF Triple, also known as a RDF Statement.
type Triple struct {
	// Subj is the subject of the Triple
	Subj URI
	// Pred is the predicate of the Triple
	Pred URI
	// Obj is the object of the triple.
	Obj Term
}

// String returns a N-Triples serialization of the Triple.
func (tr Triple) String() string {
	switch obj := tr.Obj.(type) {
	case URI:
		return fmt.Sprintf("<%s> <%s> <%s> .", tr.Subj, tr.Pred, obj)
	case Literal:
		switch obj.DataType() {
		case XSDstring:
			return fmt.Sprintf("<%s> <%s> %q .", tr.Subj, tr.Pred, obj.value)
		case RDFlangString:
			return fmt.Sprintf("<%s> <%s> %q@%s .", tr.Subj, tr.Pred, obj.value, obj.language)
		case XSDboolean:
			return fmt.Sprintf("<%s> <%s> %s .", tr.Subj, tr.Pred, obj.value)
		default:
			return fmt.Sprintf("<%s> <%s> %q^^<%s> .", tr.Subj, tr.Pred, obj.value, obj.datatype)
		}
	}
	panic("unreachable")
}

// Graph is the decoded form of a header's N-Triples body: a
// subject -> predicate -> objects index good enough to compare two
// small metadata documents for equality. It is also reused as the
// reference model query results are checked against in tests.
type Graph struct {
	nodes map[URI]map[URI]terms
}

// NewGraph returns a new Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[URI]map[URI]terms),
	}
}

// Size returns the number of triples in the Graph.
func (g *Graph) Size() (n int) {
	for _, props := range g.nodes {
		for _, vals := range props {
			n += len(vals)
		}
	}
	return n
}

// Triples returns all the triples in the Graph.
func (g *Graph) Triples() []Triple {
	trs := make([]Triple, 0, len(g.nodes))

	for subj, props := range g.nodes {
		for pred, terms := range props {
			for _, term := range terms {
				trs = append(trs, Triple{Subj: subj, Pred: pred, Obj: term})
			}
		}
	}

	return trs
}

// Eq tests for equality between graphs, meaning that they contain
// the same triples, and no graph has triples not in the other graph.
func (g *Graph) Eq(other *Graph) bool {
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for subj, props := range g.nodes {
		if _, ok := other.nodes[subj]; !ok {
			return false
		}
		for pred, terms := range props {
			if _, ok := other.nodes[subj][pred]; !ok {
				return false
			}
			if !eqTerms(terms, other.nodes[subj][pred]) {
				return false
			}
		}
	}
	for subj, props := range other.nodes {
		if _, ok := g.nodes[subj]; !ok {
			return false
		}
		for pred, terms := range props {
			if _, ok := g.nodes[subj][pred]; !ok {
				return false
			}
			if !eqTerms(terms, g.nodes[subj][pred]) {
				return false
			}
		}
	}
	return true
}

// eqTerms checks if two Terms contains the same triples.
func eqTerms(a, b terms) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Sort(a)
	sort.Sort(b)
	for i, t := range a {
		if t != b[i] {
			return false
		}
	}
	return true
}

// Insert adds one or more triples to the Graph. It returns the number
// of triples inserted which where not allready present.
func (g *Graph) Insert(trs ...Triple) (n int) {
outer:
	for _, t := range trs {
		if _, ok := g.nodes[t.Subj]; ok {
			// subject exists
			if trms, ok := g.nodes[t.Subj][t.Pred]; ok {
				// predicate exists
				for _, term := range trms {
					if term == t.Obj {
						// triple already in graph
						continue outer
					}
				}
				// add object
				g.nodes[t.Subj][t.Pred] = append(g.nodes[t.Subj][t.Pred], t.Obj)
				n++
			} else {
				// new predicate for subject
				g.nodes[t.Subj][t.Pred] = make(terms, 0, 1)
				// add object
				g.nodes[t.Subj][t.Pred] = append(g.nodes[t.Subj][t.Pred], t.Obj)
				n++
			}
		} else {
			// new subject
			g.nodes[t.Subj] = make(map[URI]terms)
			// add predicate
			g.nodes[t.Subj][t.Pred] = make(terms, 0, 1)
			// add object
			g.nodes[t.Subj][t.Pred] = append(g.nodes[t.Subj][t.Pred], t.Obj)
			n++
		}
	}
	return
}

