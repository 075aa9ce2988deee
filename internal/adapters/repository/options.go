package repository

// DefaultCapacity is the starting capacity of a new store.
const DefaultCapacity = 10

// Option applies a configuration option to the ScoreStore.
type Option func(*ScoreStore)

// WithInitialCapacity sets the starting capacity. Non-positive values keep
// DefaultCapacity.
func WithInitialCapacity(capacity int) Option {
	return func(s *ScoreStore) {
		if capacity > 0 {
			s.initialCapacity = capacity
		}
	}
}

// WithGrowthHook registers fn to be called after every reallocation with the
// old and new capacity.
func WithGrowthHook(fn func(oldCap, newCap int)) Option {
	return func(s *ScoreStore) {
		s.onGrow = fn
	}
}
