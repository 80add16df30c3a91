package guid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when text is not 36 characters or bytes are not 16 long.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidSeparator is returned when a group separator is not a hyphen.
	ErrInvalidSeparator = errors.New("invalid separator")
	// ErrInvalidHex is returned when a group contains a non-hex character.
	ErrInvalidHex = errors.New("invalid hex digit")
)

// FormatError describes input that does not have the shape of a GUID.
type FormatError struct {
	Op    string // "parse" or "decode"
	Input string
	Pos   int // offending offset, -1 when the whole input is at fault
	Err   error
}

func (e *FormatError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("guid: %s %q: %v", e.Op, e.Input, e.Err)
	}
	return fmt.Sprintf("guid: %s %q: %v at offset %d", e.Op, e.Input, e.Err, e.Pos)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
