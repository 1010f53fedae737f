package triples

// TripleID is a triple expressed purely in terms of dictionary ids.
type TripleID struct {
	S, P, O int
}

// Iterator yields triples one at a time. It is single-pass and
// non-restartable; a zero-value Iterator is never valid, use one of the
// constructors below.
type Iterator interface {
	// Next advances the iterator and returns the next triple. The
	// second value is false once the iterator is exhausted.
	Next() (TripleID, bool)
}

// emptyIterator never yields anything, for patterns whose fixed term
// could not be resolved to an id.
type emptyIterator struct{}

func (emptyIterator) Next() (TripleID, bool) { return TripleID{}, false }

// Empty returns an iterator that yields no triples.
func Empty() Iterator { return emptyIterator{} }

// scanIterator walks bY/bZ/wY in natural SPO storage order, the shared
// mechanism behind the ???, S??, SP? and SPO patterns: each one only
// differs in the starting (x, pos_y, pos_z) triple and the (max_y,
// max_z) bounds.
type scanIterator struct {
	t          *BitmapTriples
	x          int
	posY, posZ int
	maxY, maxZ int
}

func (it *scanIterator) Next() (TripleID, bool) {
	if it.posY >= it.maxY || it.posZ >= it.maxZ {
		return TripleID{}, false
	}

	p := it.t.wY.Access(it.posY)
	o := it.t.adjZ.Get(it.posZ)
	s, p2, o2, err := it.t.CoordToTriple(it.x, int(p), int(o))
	if err != nil {
		return TripleID{}, false
	}

	if it.t.adjZ.AtLastSibling(it.posZ) {
		if it.t.bY.Access(it.posY) {
			it.x++
		}
		it.posY++
	}
	it.posZ++

	return TripleID{S: s, P: p2, O: o2}, true
}

// allIterator answers the ??? pattern.
func allIterator(t *BitmapTriples) Iterator {
	return &scanIterator{t: t, x: 1, maxY: t.wY.Len(), maxZ: t.adjZ.Len()}
}

// subjectIterator answers the S?? pattern for subject s.
func subjectIterator(t *BitmapTriples, s int) Iterator {
	minY := t.FindY(s - 1)
	maxY := t.FindY(s)
	minZ := t.adjZ.Find(minY)
	maxZ := t.adjZ.Find(maxY)
	return &scanIterator{t: t, x: s, posY: minY, posZ: minZ, maxY: maxY, maxZ: maxZ}
}

// subjectPredicateIterator answers the SP? pattern for subject s and
// predicate p.
func subjectPredicateIterator(t *BitmapTriples, s int, p uint64) Iterator {
	y, ok := t.SearchY(s-1, p)
	if !ok {
		return Empty()
	}
	minZ := t.adjZ.Find(y)
	maxZ := t.adjZ.Last(y) + 1
	return &scanIterator{t: t, x: s, posY: y, posZ: minZ, maxY: y + 1, maxZ: maxZ}
}

// subjectPredicateObjectIterator answers the SPO pattern: it emits the
// single triple (s, p, o) if present, or nothing.
func subjectPredicateObjectIterator(t *BitmapTriples, s int, p uint64, o uint64) Iterator {
	y, ok := t.SearchY(s-1, p)
	if !ok {
		return Empty()
	}
	minZ := t.adjZ.Find(y)
	maxZ := t.adjZ.Last(y) + 1
	for z := minZ; z < maxZ; z++ {
		if t.adjZ.Get(z) == o {
			return &scanIterator{t: t, x: s, posY: y, posZ: z, maxY: y + 1, maxZ: z + 1}
		}
	}
	return Empty()
}

// subjectObjectIterator answers the S?O pattern by filtering subjectIterator.
type subjectObjectIterator struct {
	inner Iterator
	o     int
}

func (it *subjectObjectIterator) Next() (TripleID, bool) {
	for {
		tr, ok := it.inner.Next()
		if !ok {
			return TripleID{}, false
		}
		if tr.O == it.o {
			return tr, true
		}
	}
}

func subjectObjectIteratorNew(t *BitmapTriples, s, o int) Iterator {
	return &subjectObjectIterator{inner: subjectIterator(t, s), o: o}
}

// predicateIterator answers the ?P? pattern for predicate p, walking
// each subject group that uses p in turn.
type predicateIterator struct {
	t    *BitmapTriples
	p    uint64
	occs int
	i    int
	s    int
	posZ int
	maxZ int
}

func predicateIteratorNew(t *BitmapTriples, p uint64) Iterator {
	occs := t.wY.Rank(t.wY.Len(), p)
	return &predicateIterator{t: t, p: p, occs: occs}
}

func (it *predicateIterator) Next() (TripleID, bool) {
	if it.i >= it.occs {
		return TripleID{}, false
	}
	if it.posZ >= it.maxZ {
		posY := it.t.wY.Select(it.i, it.p)
		it.s = it.t.bY.Rank1(posY) + 1
		it.posZ = it.t.adjZ.Find(posY)
		it.maxZ = it.t.adjZ.Last(posY) + 1
	}

	o := it.t.adjZ.Get(it.posZ)
	s, p, o2, err := it.t.CoordToTriple(it.s, int(it.p), int(o))
	if err != nil {
		return TripleID{}, false
	}

	it.posZ++
	if it.posZ >= it.maxZ {
		it.i++
	}
	return TripleID{S: s, P: p, O: o2}, true
}

// objectIterator answers the ??O pattern for object o, walking its
// bucket in the object→position index.
type objectIterator struct {
	t        *BitmapTriples
	o        int
	pos      int
	maxIndex int
}

func objectIteratorNew(t *BitmapTriples, o int) Iterator {
	idx := t.opIndex
	start := idx.Find(o)
	end := idx.Last(o)
	return &objectIterator{t: t, o: o, pos: start, maxIndex: end + 1}
}

func (it *objectIterator) Next() (TripleID, bool) {
	if it.pos >= it.maxIndex {
		return TripleID{}, false
	}
	posZ := int(it.t.opIndex.Seq.Get(it.pos))
	posY := it.t.adjZ.Bitmap.Rank1(posZ)
	p := it.t.wY.Access(posY)
	s := it.t.bY.Rank1(posY) + 1
	it.pos++

	sID, pID, oID, err := it.t.CoordToTriple(s, int(p), it.o)
	if err != nil {
		return TripleID{}, false
	}
	return TripleID{S: sID, P: pID, O: oID}, true
}

// predicateObjectIterator answers the ?PO pattern for predicate p and
// object o: it scans the object's bucket in the object→position index
// and keeps only the entries whose mapped predicate equals p. The
// bucket is ordered by position, not predicate, so this cannot be a
// binary search.
type predicateObjectIterator struct {
	t        *BitmapTriples
	p, o     int
	pos      int
	maxIndex int
}

func predicateObjectIteratorNew(t *BitmapTriples, p, o int) Iterator {
	idx := t.opIndex
	low := idx.Find(o)
	high := idx.Last(o)
	if low > high {
		return Empty()
	}
	return &predicateObjectIterator{t: t, p: p, o: o, pos: low, maxIndex: high + 1}
}

func (it *predicateObjectIterator) Next() (TripleID, bool) {
	for it.pos < it.maxIndex {
		posZ := int(it.t.opIndex.Seq.Get(it.pos))
		posY := it.t.adjZ.Bitmap.Rank1(posZ)
		p := int(it.t.wY.Access(posY))
		it.pos++
		if p != it.p {
			continue
		}
		s := it.t.bY.Rank1(posY) + 1
		sID, pID, oID, err := it.t.CoordToTriple(s, p, it.o)
		if err != nil {
			return TripleID{}, false
		}
		return TripleID{S: sID, P: pID, O: oID}, true
	}
	return TripleID{}, false
}
