// Package scheduler runs weekly report generation on a fixed cadence: once
// at startup, then every Monday 00:00 UTC.
package scheduler

//go:generate mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// Generator produces the weekly report
type Generator interface {
	GenerateWeeklyReport(ctx context.Context, target *time.Time) (*models.WeeklyReport, error)
}

// State is the lifecycle position of a Scheduler
type State int

const (
	StateIdle State = iota
	StateScheduled
	StateExecuting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateExecuting:
		return "executing"
	default:
		return "unknown"
	}
}

// Options configures a Scheduler
type Options struct {
	// Disabled keeps the scheduler idle: no timers, no runs
	Disabled bool
	// Clock defaults to RealClock
	Clock Clock
	// ReportError receives every failed run; defaults to Sentry
	ReportError func(error)
}

// Scheduler triggers weekly report generation. Start and Stop may be
// called from any goroutine.
type Scheduler struct {
	gen         Generator
	clock       Clock
	disabled    bool
	reportError func(error)

	mu       sync.Mutex
	state    State
	started  bool
	stopped  bool
	inflight int
	timers   []Timer
	ctx      context.Context
	wg       sync.WaitGroup
}

// New creates a scheduler for gen
func New(gen Generator, opts Options) *Scheduler {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.ReportError == nil {
		opts.ReportError = func(err error) { sentry.CaptureException(err) }
	}
	return &Scheduler{
		gen:         gen,
		clock:       opts.Clock,
		disabled:    opts.Disabled,
		reportError: opts.ReportError,
	}
}

// Start runs one generation in the background and arms the timer for the
// next Monday. Runs are detached from ctx cancellation but keep its values.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.Ctx(ctx)
	if s.disabled {
		log.Info("weekly report scheduler disabled")
		return
	}
	if s.started {
		return
	}
	s.started = true
	s.ctx = context.WithoutCancel(ctx)
	s.state = StateScheduled

	s.beginLocked()
	runCtx := s.ctx
	go func() {
		defer s.finish()
		s.generate(runCtx, "startup")
	}()

	delay := calendar.UntilNextMonday(s.clock.Now())
	s.timers = append(s.timers, s.clock.AfterFunc(delay, s.onFirstMonday))

	log.Info("weekly report scheduler started",
		logger.Duration("next_run_in", delay),
	)
}

func (s *Scheduler) onFirstMonday() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	// the one-shot timer has fired and is no longer armed
	s.timers = []Timer{s.clock.Every(calendar.Week, func() { s.execute("weekly") })}
	s.mu.Unlock()

	s.execute("weekly")
}

func (s *Scheduler) execute(trigger string) {
	s.mu.Lock()
	ok := s.beginLocked()
	ctx := s.ctx
	s.mu.Unlock()
	if !ok {
		return
	}
	defer s.finish()

	s.generate(ctx, trigger)
}

// beginLocked registers an in-flight run. s.mu must be held.
func (s *Scheduler) beginLocked() bool {
	if s.stopped {
		return false
	}
	s.inflight++
	s.state = StateExecuting
	s.wg.Add(1)
	return true
}

func (s *Scheduler) finish() {
	s.mu.Lock()
	s.inflight--
	if s.inflight == 0 && !s.stopped {
		s.state = StateScheduled
	}
	s.mu.Unlock()
	s.wg.Done()
}

func (s *Scheduler) generate(ctx context.Context, trigger string) {
	log := logger.Ctx(ctx).With(logger.String("trigger", trigger))

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("weekly report generation panicked: %v", r)
			log.Error("weekly report run failed", logger.Err(err))
			s.reportError(err)
		}
	}()

	start := s.clock.Now()
	report, err := s.gen.GenerateWeeklyReport(ctx, nil)
	if err != nil {
		log.Error("weekly report run failed", logger.Err(err))
		s.reportError(err)
		return
	}

	log.Info("weekly report run complete",
		logger.String("report_id", report.ID),
		logger.Int("patients", len(report.Patients)),
		logger.Duration("duration", s.clock.Now().Sub(start)),
	)
}

// Stop disarms all timers and waits for in-flight runs to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped || !s.started {
		s.stopped = true
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

// State reports the current lifecycle state
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ArmedTimers reports how many timers are currently armed
func (s *Scheduler) ArmedTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
