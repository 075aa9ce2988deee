// Package repository holds the in-memory score store.
package repository

// Store provides ordered, validated access to the scores of a session.
type Store interface {
	// Add appends value if it is a valid score. Out-of-range values fail
	// with model.ErrOutOfRange and leave the store unchanged.
	Add(value float64) error

	// Count returns the number of stored scores.
	Count() int

	// Get returns the i-th score or ErrIndexOutOfBounds.
	Get(i int) (float64, error)

	// SortAscending orders the scores in place, non-decreasing.
	SortAscending()

	// ReplaceAll discards the current contents and stores values in order.
	ReplaceAll(values []float64) error

	// Clear empties the store.
	Clear()

	// Snapshot returns an independent copy of the current contents.
	Snapshot() []float64
}
