package service

import (
	repository "github.com/okian/gradestats/internal/adapters/repository"
	"github.com/okian/gradestats/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInitialCapacity sets the starting capacity of the score store.
func WithInitialCapacity(capacity int) Option {
	return func(s *Service) {
		if capacity > 0 {
			s.initialCapacity = capacity
		}
	}
}

// WithStore replaces the default score store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}
