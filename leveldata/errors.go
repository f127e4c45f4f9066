package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrCorrupted          = errors.New("leveldata: corrupted level data")
	ErrCapacity           = errors.New("leveldata: table capacity exceeded")
	ErrMismatchedVersions = errors.New("leveldata: block and spawner files have different versions")
	ErrInvalidValue       = errors.New("leveldata: value cannot be encoded")
)

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...)
}

func invalidValue(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)
}
