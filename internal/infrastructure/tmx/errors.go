package tmx

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is wrapped by every Parse failure caused by the
	// document itself: a missing root, a missing or non-numeric required
	// attribute, or a cell-data block that does not hold width*height integers.
	ErrMalformedDocument = errors.New("tmx: malformed document")

	// ErrUnsupportedEncoding is returned for layer data this parser does not
	// decode (base64, with or without compression).
	ErrUnsupportedEncoding = errors.New("tmx: unsupported layer data encoding")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}
