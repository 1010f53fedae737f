package dict

import "errors"

var (
	// ErrOutOfRange is returned when an id passed to Extract exceeds the
	// section's range.
	ErrOutOfRange = errors.New("id out of range")
	// ErrBadUtf8 is returned when a reconstructed term is not valid
	// UTF-8. The returned string still carries a lossy recovery value.
	ErrBadUtf8 = errors.New("invalid utf-8")
)
