package control

import "errors"

var (
	// ErrBadCookie is returned when the leading "$HDT" cookie is missing.
	ErrBadCookie = errors.New("bad cookie")
	// ErrBadControlType is returned when the type byte is outside 0..5.
	ErrBadControlType = errors.New("bad control type")
	// ErrBadFormat is returned when a block's format URI doesn't match
	// what the caller required.
	ErrBadFormat = errors.New("bad format")
	// ErrCorrupt is returned on checksum mismatch.
	ErrCorrupt = errors.New("corrupt")
)
