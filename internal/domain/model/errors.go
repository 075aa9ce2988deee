package model

import "errors"

// Sentinel kinds for score validation.
var (
	ErrOutOfRange = errors.New("score out of range")
)
