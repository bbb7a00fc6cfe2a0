package literal

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput    = errors.New("literal: input is empty")
	ErrTokenLength   = errors.New("literal: token is not two characters")
	ErrTokenHex      = errors.New("literal: token is not a hexadecimal byte")
	ErrLiteralSyntax = errors.New("literal: malformed literal body")
	ErrRoundTrip     = errors.New("literal: output does not round-trip")
)

// FormatError reports a token that does not decode to a single byte.
type FormatError struct {
	Value string
	Index int
	Err   error
}

func (e *FormatError) Error() string {
	if errors.Is(e.Err, ErrTokenHex) {
		return fmt.Sprintf("Value '%s' at index %d is not a hexadecimal byte value!", e.Value, e.Index)
	}
	return fmt.Sprintf("Value '%s' at index %d does not consist of two characters!", e.Value, e.Index)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
