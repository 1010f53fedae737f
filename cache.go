package hdt

import "github.com/boutros/hdt/dict"

// TripleCache remembers the last string looked up for each of the
// three dictionary id spaces, so that a pattern iterator walking many
// triples that repeat a fixed subject or predicate doesn't re-extract
// the same term from the front-coded dictionary on every row.
type TripleCache struct {
	subject   cacheEntry
	predicate cacheEntry
	object    cacheEntry
}

type cacheEntry struct {
	id  int
	str string
	ok  bool
}

// lookup resolves id under kind, using the cached value when id
// matches the last lookup for that position.
func (c *TripleCache) lookup(d *dict.FourSectDict, kind dict.Kind, id int) (string, error) {
	entry := c.entryFor(kind)
	if entry.ok && entry.id == id {
		return entry.str, nil
	}
	s, err := d.IDToString(id, kind)
	if err != nil {
		return "", err
	}
	*entry = cacheEntry{id: id, str: s, ok: true}
	return s, nil
}

func (c *TripleCache) entryFor(kind dict.Kind) *cacheEntry {
	switch kind {
	case dict.Predicate:
		return &c.predicate
	case dict.Object:
		return &c.object
	default:
		return &c.subject
	}
}
