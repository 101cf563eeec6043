package buffer

import "github.com/pkg/errors"

var (
	// ErrUnrecognizedInputKind is returned when a text source is neither a
	// string nor a []uint16.
	ErrUnrecognizedInputKind = errors.New("unrecognized text input kind")

	// ErrInvalidBoundary is returned when a Scanner yields offsets that are
	// not strictly increasing from 0 or that run past the end of the text.
	ErrInvalidBoundary = errors.New("invalid boundary from scanner")

	// ErrOutOfBounds is returned for code-point indices outside the index.
	ErrOutOfBounds = errors.New("code point index out of bounds")
)
