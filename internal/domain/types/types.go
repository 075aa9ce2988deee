// Package types contains common types used across the application
package types

// Entry represents one row of a score listing.
type Entry struct {
	Position int     `json:"position"` // 1-based
	Score    float64 `json:"score"`
}

// Entries numbers scores from 1 in their current order.
func Entries(scores []float64) []Entry {
	out := make([]Entry, len(scores))
	for i, s := range scores {
		out[i] = Entry{Position: i + 1, Score: s}
	}
	return out
}
