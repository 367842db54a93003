package dotmatrix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColor           = errors.New("dotmatrix: invalid color")
	ErrInvalidRange           = errors.New("dotmatrix: temperature out of range")
	ErrInvalidBrightnessRange = errors.New("dotmatrix: brightness out of range")
	ErrUnsupportedFileType    = errors.New("dotmatrix: unsupported file type")
	ErrUnknownFileType        = errors.New("dotmatrix: unknown file type")
	ErrDecodeFailure          = errors.New("dotmatrix: decode failure")
)

// DecodeError records a failure to decode picture content.
type DecodeError struct {
	MIME string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dotmatrix: decoding %s: %v", e.MIME, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecodeFailure.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailure
}
