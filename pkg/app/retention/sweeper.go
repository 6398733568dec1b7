package retention

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/NeuralTrust/TutorGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// Sweeper drops sessions older than MaxAge. Artifact files are left on disk.
type Sweeper struct {
	logger   *logrus.Logger
	repo     session.Repository
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	stopped chan struct{}
}

type Options struct {
	MaxAge   time.Duration
	Interval time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewSweeper(logger *logrus.Logger, repo session.Repository, opts Options) *Sweeper {
	if opts.MaxAge <= 0 {
		opts.MaxAge = common.SessionRetention
	}
	if opts.Interval <= 0 {
		opts.Interval = common.SessionSweepInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Sweeper{
		logger:   logger,
		repo:     repo,
		maxAge:   opts.MaxAge,
		interval: opts.Interval,
		now:      opts.Now,
	}
}

// Start runs the sweep loop until ctx is cancelled. Calling it twice is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stopped != nil {
		s.mu.Unlock()
		return
	}
	s.stopped = make(chan struct{})
	stopped := s.stopped
	s.mu.Unlock()

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Sweep(ctx); err != nil {
					s.logger.WithError(err).Error("session sweep failed")
				}
			}
		}
	}()
}

// Done is closed once the loop started by Start has exited.
func (s *Sweeper) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.stopped
}

// Sweep removes every session created before now minus MaxAge.
func (s *Sweeper) Sweep(ctx context.Context) (removed int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during sweep: %v", r)
		}
	}()

	cutoff := s.now().Add(-s.maxAge)
	removed, err = s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	remaining := s.repo.Count(ctx)
	prometheus.SessionsSwept.Add(float64(removed))
	prometheus.Sessions.Set(float64(remaining))

	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": remaining,
			"cutoff":    cutoff.Format(time.RFC3339),
		}).Info("expired sessions swept")
	}
	return removed, nil
}
