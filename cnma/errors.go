package cnma

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMode    = errors.New("cnma: unknown mode")
	ErrNoMode         = errors.New("cnma: entry outside of any mode")
	ErrCorruptedEntry = errors.New("cnma: corrupted entry")
	ErrInvalidValue   = errors.New("cnma: value cannot be written")
)

// LineError reports the 1-based line a parse error occurred on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

func corruptedEntry(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorruptedEntry}, args...)...)
}

func invalidValue(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)
}
