package repository

import (
	"fmt"

	"github.com/okian/gradestats/internal/domain/model"
	"github.com/okian/gradestats/internal/domain/stats"
)

// ScoreStore is a growable array of validated scores.
//
// buf always has len == capacity; only buf[:n] holds scores. Growth
// allocates a new array of twice the capacity and copies the scores in
// order, so callers never observe a partially grown store. The store is
// not safe for concurrent use; a session owns exactly one.
type ScoreStore struct {
	buf             []float64
	n               int
	initialCapacity int
	onGrow          func(oldCap, newCap int)
}

var _ Store = (*ScoreStore)(nil)

// NewScoreStore creates an empty store.
func NewScoreStore(opts ...Option) *ScoreStore {
	s := &ScoreStore{initialCapacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.buf = make([]float64, s.initialCapacity)
	return s
}

// Add appends value when it lies in [0, 10].
func (s *ScoreStore) Add(value float64) error {
	if err := model.Validate(value); err != nil {
		return err
	}
	s.reserve(s.n + 1)
	s.buf[s.n] = value
	s.n++
	return nil
}

// Count returns the number of stored scores.
func (s *ScoreStore) Count() int { return s.n }

// Capacity returns the size of the backing array.
func (s *ScoreStore) Capacity() int { return len(s.buf) }

// Get returns the score at position i.
func (s *ScoreStore) Get(i int) (float64, error) {
	if i < 0 || i >= s.n {
		return 0, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfBounds, i, s.n)
	}
	return s.buf[i], nil
}

// SortAscending orders the scores in place with an insertion sort.
func (s *ScoreStore) SortAscending() {
	stats.InsertionSort(s.buf[:s.n])
}

// ReplaceAll swaps in values as the new contents. Every value is validated
// first; on failure the store is left untouched.
func (s *ScoreStore) ReplaceAll(values []float64) error {
	for i, v := range values {
		if err := model.Validate(v); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	capacity := s.initialCapacity
	for capacity < len(values) {
		capacity *= 2
	}
	buf := make([]float64, capacity)
	copy(buf, values)
	s.buf = buf
	s.n = len(values)
	return nil
}

// Clear empties the store and resets it to its starting capacity.
func (s *ScoreStore) Clear() {
	s.buf = make([]float64, s.initialCapacity)
	s.n = 0
}

// Snapshot returns a copy of the scores in their current order.
func (s *ScoreStore) Snapshot() []float64 {
	out := make([]float64, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// reserve grows the backing array by doubling until it holds need scores.
func (s *ScoreStore) reserve(need int) {
	if need <= len(s.buf) {
		return
	}
	oldCap := len(s.buf)
	newCap := oldCap * 2
	for newCap < need {
		newCap *= 2
	}
	buf := make([]float64, newCap)
	copy(buf, s.buf[:s.n])
	s.buf = buf
	if s.onGrow != nil {
		s.onGrow(oldCap, newCap)
	}
}
