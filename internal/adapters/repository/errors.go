package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
