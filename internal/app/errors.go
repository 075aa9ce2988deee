package service

import "errors"

// Sentinel kinds for session errors.
var (
	ErrEmpty = errors.New("no scores recorded")
)
