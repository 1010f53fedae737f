package triples

// Pattern is a triple pattern: each field is either a fixed dictionary
// id or 0 to mean "any".
type Pattern struct {
	Subject, Predicate, Object int
}

// Query dispatches p to the mechanism matching which of its components
// are fixed, one of the eight combinations of S/P/O each either bound
// or wildcard.
func Query(t *BitmapTriples, p Pattern) Iterator {
	s, pr, o := p.Subject, p.Predicate, p.Object
	switch {
	case s == 0 && pr == 0 && o == 0:
		return allIterator(t)
	case s != 0 && pr == 0 && o == 0:
		return subjectIterator(t, s)
	case s != 0 && pr != 0 && o == 0:
		return subjectPredicateIterator(t, s, uint64(pr))
	case s != 0 && pr != 0 && o != 0:
		return subjectPredicateObjectIterator(t, s, uint64(pr), uint64(o))
	case s == 0 && pr != 0 && o == 0:
		return predicateIteratorNew(t, uint64(pr))
	case s == 0 && pr == 0 && o != 0:
		return objectIteratorNew(t, o)
	case s == 0 && pr != 0 && o != 0:
		return predicateObjectIteratorNew(t, pr, o)
	case s != 0 && pr == 0 && o != 0:
		return subjectObjectIteratorNew(t, s, o)
	default:
		return Empty()
	}
}
