// Package hdt reads the Header-Dictionary-Triples binary RDF format
// into memory and answers triple-pattern queries against it without
// ever materializing the graph as a list of string triples.
//
// A dataset is read once with Load, which parses the global control
// block, the header, the four-section front-coded dictionary and the
// bitmap-triples index in sequence. The returned Graph resolves RDF
// terms to dictionary ids and back, and answers any of the eight
// triple patterns (subject/predicate/object each bound or unbound) by
// dispatching to the matching bitmap-triples iterator rather than
// scanning the whole index.
package hdt
