package stepreport

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

// RenderScheduler is responsible for scheduling periodic report renders.
type RenderScheduler interface {
	Start(ctx context.Context) error
	Stop() error
	RegisterCallback(func() error)
	Stopped() bool
}

// DefaultRenderScheduler implements the RenderScheduler interface.
type DefaultRenderScheduler struct {
	interval time.Duration
	runOnce  bool
	logger   log.Logger
	callback func() error

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewDefaultRenderScheduler creates a new DefaultRenderScheduler.
func NewDefaultRenderScheduler(interval time.Duration, runOnce bool, logger log.Logger) *DefaultRenderScheduler {
	return &DefaultRenderScheduler{
		interval: interval,
		runOnce:  runOnce,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// RegisterCallback registers the callback to be called when a render is due.
func (s *DefaultRenderScheduler) RegisterCallback(callback func() error) {
	s.callback = callback
}

// Start starts the scheduler. In run-once mode the callback runs exactly once
// on the calling goroutine and its error is returned directly.
func (s *DefaultRenderScheduler) Start(ctx context.Context) error {
	if s.callback == nil {
		return errors.New("callback must be registered before starting scheduler")
	}

	s.done = make(chan struct{})
	s.running.Store(true)

	if s.runOnce {
		s.logger.Info("Starting scheduler in run-once mode")
		defer s.running.Store(false)
		return s.callback()
	}

	s.logger.Info("Starting scheduler in continuous mode", "interval", s.interval)

	// Render immediately on startup
	if err := s.callback(); err != nil {
		s.logger.Error("Initial render failed", "error", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			select {
			case <-time.After(s.interval):
				if !s.running.Load() {
					return
				}
				s.logger.Info("Running periodic render")
				if err := s.callback(); err != nil {
					s.logger.Error("Error running periodic render", "error", err)
				}

			case <-s.done:
				s.logger.Debug("Done signal received, stopping periodic renderer")
				return

			case <-ctx.Done():
				s.logger.Debug("Context canceled, stopping periodic renderer")
				s.running.Store(false)
				return
			}
		}
	}()

	return nil
}

// Stop stops the scheduler and waits for the renderer goroutine to exit.
func (s *DefaultRenderScheduler) Stop() error {
	if !s.running.Load() {
		s.logger.Debug("Scheduler already stopped, nothing to do")
		return nil
	}

	s.running.Store(false)
	close(s.done)
	s.wg.Wait()
	return nil
}

// Stopped reports whether the scheduler has stopped.
func (s *DefaultRenderScheduler) Stopped() bool {
	return !s.running.Load()
}
