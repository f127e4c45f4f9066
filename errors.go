package lparse

import "errors"

var (
	ErrInvalidMagic       = errors.New("lparse: invalid magic")
	ErrUnsupportedVersion = errors.New("lparse: unsupported version")
	ErrInvalidHeader      = errors.New("lparse: invalid entry header")
	ErrUnknownEntryType   = errors.New("lparse: unknown entry type")
	ErrEntryCorrupted     = errors.New("lparse: entry corrupted")
	ErrLimitExceeded      = errors.New("lparse: limit exceeded")
	ErrCapacity           = errors.New("lparse: entry capacity exceeded")
	ErrInvalidEntry       = errors.New("lparse: invalid entry")
	ErrEntryNotFound      = errors.New("lparse: entry not found")
	ErrWrongType          = errors.New("lparse: wrong entry type requested")
)
