package codec

import "errors"

// Sentinel kinds for codec errors.
var (
	// ErrIO marks failures to open, read or write the underlying file or
	// stream. Malformed file content is never an error.
	ErrIO = errors.New("score file i/o failed")

	// ErrMalformed is returned by ParseScore when the input is not exactly
	// one decimal number.
	ErrMalformed = errors.New("malformed score")
)
