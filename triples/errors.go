package triples

import "errors"

var (
	// ErrBadFormat is returned when the triples control block names a
	// format this reader doesn't support (e.g. triplesList).
	ErrBadFormat = errors.New("bad format")
	// ErrBadProperty is returned when the order property is missing,
	// unparseable, or names an order other than SPO.
	ErrBadProperty = errors.New("bad property")
)
