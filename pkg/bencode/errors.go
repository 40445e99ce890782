package bencode

import (
	"errors"
	"fmt"
)

// Format error kinds. Every decode failure wraps exactly one of these.
var (
	ErrDictionary            = errors.New("dictionary formatting error")
	ErrInteger               = errors.New("integer formatting error")
	ErrList                  = errors.New("list formatting error")
	ErrWrongCharacter        = errors.New("decoding wrong character")
	ErrNumberNotInUTF8       = errors.New("encoded number wasn't valid UTF-8")
	ErrFailedToParseInteger  = errors.New("failed to parse integer")
	ErrWrongKeyFormat        = errors.New("dictionary key wasn't a string")
	ErrUnexpectedEndOfBuffer = errors.New("unexpected end of buffer")
	ErrNestingTooDeep        = errors.New("nesting too deep")
)

// FormatError reports where in the buffer decoding failed.
type FormatError struct {
	Offset int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bencode: %v at offset %d", e.Err, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
