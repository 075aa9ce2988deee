// Package service implements the use cases of one grading session on top
// of the score store, the statistics functions and the score file codec.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/okian/gradestats/internal/adapters/codec"
	repository "github.com/okian/gradestats/internal/adapters/repository"
	"github.com/okian/gradestats/internal/domain/model"
	"github.com/okian/gradestats/internal/domain/stats"
	"github.com/okian/gradestats/internal/domain/types"
	"github.com/okian/gradestats/pkg/logger"
	"github.com/okian/gradestats/pkg/metrics"
)

const nanosecondsPerMillisecond = 1e6

// Service owns the score store of a single session. It is driven by one
// caller at a time and is not safe for concurrent use.
type Service struct {
	store           repository.Store
	initialCapacity int
	sessionID       string
	logger          logger.Logger
}

// New constructs a Service with an empty store.
func New(opts ...Option) *Service {
	s := &Service{
		initialCapacity: repository.DefaultCapacity,
		sessionID:       uuid.NewString(),
		logger:          logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(logger.String("session", s.sessionID))

	if s.store == nil {
		s.store = repository.NewScoreStore(
			repository.WithInitialCapacity(s.initialCapacity),
			repository.WithGrowthHook(s.onGrow),
		)
	}
	s.updateGauges()

	return s
}

// SessionID identifies this session in logs.
func (s *Service) SessionID() string { return s.sessionID }

// AddScore validates and appends one score.
func (s *Service) AddScore(ctx context.Context, v float64) error {
	if err := s.store.Add(v); err != nil {
		metrics.RecordScoreRejected()
		s.logger.Debug(ctx, "score rejected", logger.Float64("score", v), logger.Error(err))
		return err
	}
	metrics.RecordScoreAdded()
	s.updateGauges()
	s.logger.Debug(ctx, "score added", logger.Float64("score", v), logger.Int("count", s.store.Count()))
	return nil
}

// Count returns the number of scores in the session.
func (s *Service) Count() int { return s.store.Count() }

// Scores returns a snapshot of the scores in their current order.
func (s *Service) Scores() []float64 { return s.store.Snapshot() }

// Entries returns the scores numbered from 1 for display.
func (s *Service) Entries() []types.Entry { return types.Entries(s.store.Snapshot()) }

// Statistics summarizes the current scores. Check Summary.Empty before
// presenting the zero values of an empty session.
func (s *Service) Statistics(ctx context.Context) stats.Summary {
	sum := stats.Summarize(s.store.Snapshot())
	metrics.RecordStatisticsComputed()
	s.logger.Debug(ctx, "statistics computed",
		logger.Int("count", sum.Count),
		logger.Float64("mean", sum.Mean),
		logger.Float64("stddev", sum.StdDev),
	)
	return sum
}

// Sort orders the scores ascending in place. It returns ErrEmpty when there
// is nothing to sort.
func (s *Service) Sort(ctx context.Context) error {
	if s.store.Count() == 0 {
		return ErrEmpty
	}
	s.store.SortAscending()
	metrics.RecordSort()
	s.logger.Debug(ctx, "scores sorted", logger.Int("count", s.store.Count()))
	return nil
}

// Clear removes every score.
func (s *Service) Clear(ctx context.Context) {
	s.store.Clear()
	s.updateGauges()
	s.logger.Debug(ctx, "scores cleared")
}

// Save writes the current scores to path.
func (s *Service) Save(ctx context.Context, path string) error {
	start := time.Now()
	scores := s.store.Snapshot()

	if err := codec.SaveFile(path, scores); err != nil {
		s.fileOpFailed(ctx, metrics.OpSave, path, start, err)
		return err
	}

	metrics.RecordFileOperation(metrics.OpSave, metrics.ResultOK, elapsedMs(start))
	s.logger.Info(ctx, "scores saved", logger.String("path", path), logger.Int("count", len(scores)))
	return nil
}

// Load replaces the current scores with those read from path and returns
// the new count. On any failure the current scores are kept.
func (s *Service) Load(ctx context.Context, path string) (int, error) {
	start := time.Now()

	scores, rep, err := codec.LoadFile(path)
	if err != nil {
		s.fileOpFailed(ctx, metrics.OpLoad, path, start, err)
		return s.store.Count(), err
	}
	if err := s.store.ReplaceAll(scores); err != nil {
		s.fileOpFailed(ctx, metrics.OpLoad, path, start, err)
		return s.store.Count(), err
	}

	s.updateGauges()
	metrics.RecordDecodedLines(rep.Accepted, rep.Malformed, rep.OutOfRange)
	metrics.RecordFileOperation(metrics.OpLoad, metrics.ResultOK, elapsedMs(start))
	if rep.Skipped() > 0 {
		s.logger.Warn(ctx, "skipped lines while loading",
			logger.String("path", path),
			logger.Int("malformed", rep.Malformed),
			logger.Int("outOfRange", rep.OutOfRange),
		)
	}
	s.logger.Info(ctx, "scores loaded", logger.String("path", path), logger.Int("count", rep.Accepted))
	return s.store.Count(), nil
}

func (s *Service) fileOpFailed(ctx context.Context, op, path string, start time.Time, err error) {
	errType := "io"
	if errors.Is(err, model.ErrOutOfRange) {
		errType = "validation"
	}
	metrics.RecordFileOperation(op, metrics.ResultError, elapsedMs(start))
	metrics.RecordErrorByComponent("codec", errType)
	s.logger.Error(ctx, op+" failed", logger.String("path", path), logger.Error(err))
}

func (s *Service) onGrow(oldCap, newCap int) {
	metrics.RecordStoreGrowth()
	s.logger.Debug(context.Background(), "store grown",
		logger.Int("from", oldCap),
		logger.Int("to", newCap),
	)
}

func (s *Service) updateGauges() {
	capacity := s.store.Count()
	if c, ok := s.store.(interface{ Capacity() int }); ok {
		capacity = c.Capacity()
	}
	metrics.UpdateStore(s.store.Count(), capacity)
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond
}
