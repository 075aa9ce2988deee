// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
)

// Score bounds. Both ends are inclusive.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Score is a recorded grade in [MinScore, MaxScore]. It has no identity
// beyond its value and its position in a store.
type Score = float64

// Valid reports whether v may be stored as a Score. NaN is never valid.
func Valid(v float64) bool {
	return !math.IsNaN(v) && v >= MinScore && v <= MaxScore
}

// Validate returns an error wrapping ErrOutOfRange when v is not a valid Score.
func Validate(v float64) error {
	if !Valid(v) {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, v, MinScore, MaxScore)
	}
	return nil
}
