package dict

import (
	"bufio"
	"fmt"

	"github.com/boutros/hdt/control"
)

// Kind selects which of the dictionary's id spaces a term belongs to.
type Kind int

const (
	Subject Kind = iota
	Predicate
	Object
)

func (k Kind) String() string {
	switch k {
	case Subject:
		return "Subject"
	case Predicate:
		return "Predicate"
	case Object:
		return "Object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FourSectDict is the four-section plain front-coded dictionary: shared
// subject/object terms, subjects, predicates and objects.
type FourSectDict struct {
	Shared     *PFCSection
	Subjects   *PFCSection
	Predicates *PFCSection
	Objects    *PFCSection
}

// IDToString translates id to its term under kind. Subject and object
// ids in [1, |Shared|] resolve against the shared section; ids above
// that resolve against the kind-specific section, offset by |Shared|.
func (d *FourSectDict) IDToString(id int, kind Kind) (string, error) {
	sharedSize := d.Shared.NumStrings()
	switch kind {
	case Predicate:
		return d.Predicates.Extract(id)
	case Subject:
		if id <= sharedSize {
			return d.Shared.Extract(id)
		}
		return d.Subjects.Extract(id - sharedSize)
	case Object:
		if id <= sharedSize {
			return d.Shared.Extract(id)
		}
		return d.Objects.Extract(id - sharedSize)
	default:
		return "", fmt.Errorf("dict: unknown kind %v", kind)
	}
}

// StringToID translates term to its id under kind, or 0 if absent.
func (d *FourSectDict) StringToID(term string, kind Kind) int {
	sharedSize := d.Shared.NumStrings()
	switch kind {
	case Predicate:
		return d.Predicates.Locate(term)
	case Subject:
		if id := d.Shared.Locate(term); id != 0 {
			return id
		}
		if id := d.Subjects.Locate(term); id != 0 {
			return id + sharedSize
		}
		return 0
	case Object:
		if id := d.Shared.Locate(term); id != 0 {
			return id
		}
		if id := d.Objects.Locate(term); id != 0 {
			return id + sharedSize
		}
		return 0
	default:
		return 0
	}
}

// SizeInBytes returns the approximate live memory footprint of the four
// sections.
func (d *FourSectDict) SizeInBytes() int {
	return d.Shared.SizeInBytes() + d.Subjects.SizeInBytes() +
		d.Predicates.SizeInBytes() + d.Objects.SizeInBytes()
}

// ReadFourSectDict parses a dictionary control block (requiring the
// dictionaryFour format) followed by the four PFC sections, in
// shared/subjects/predicates/objects order. br must be the same
// buffered reader used for the whole stream.
func ReadFourSectDict(br *bufio.Reader) (*FourSectDict, error) {
	ci, err := control.Read(br)
	if err != nil {
		return nil, fmt.Errorf("dict: reading control block: %w", err)
	}
	if err := ci.RequireType(control.Dictionary); err != nil {
		return nil, err
	}
	if err := ci.RequireFormat(control.FormatDictionary); err != nil {
		return nil, err
	}

	sections := make([]*PFCSection, 4)
	names := [4]string{"shared", "subjects", "predicates", "objects"}
	for i, name := range names {
		sect, err := ReadPFCSection(br)
		if err != nil {
			return nil, fmt.Errorf("dict: reading %s section: %w", name, err)
		}
		sections[i] = sect
	}

	return &FourSectDict{
		Shared:     sections[0],
		Subjects:   sections[1],
		Predicates: sections[2],
		Objects:    sections[3],
	}, nil
}
