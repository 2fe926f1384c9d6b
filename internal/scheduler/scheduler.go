// Package scheduler runs league maintenance on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/ringside/schema"
	"github.com/robfig/cron/v3"
)

// Job names used in logs and metrics.
const (
	SweepJob = "inactivity_sweep"
	QueueJob = "upgrade_queue"
)

// Jobs is the league work the scheduler triggers.
type Jobs interface {
	SweepAll(ctx context.Context) ([]schema.InactivityReport, error)
	ProcessAllQueues(ctx context.Context) (int, error)
}

// Recorder observes job runs.
type Recorder interface {
	JobRan(job string, took time.Duration, err error)
}

// Notifier announces sweep results to players.
type Notifier interface {
	AnnounceInactivity(ctx context.Context, report schema.InactivityReport)
}

// Config holds scheduler configuration. An empty schedule disables its job.
type Config struct {
	SweepSchedule  string
	QueueSchedule  string
	TriggerTimeout time.Duration
}

// Scheduler manages the sweep and queue jobs using robfig/cron.
type Scheduler struct {
	cron     *cron.Cron
	jobs     Jobs
	recorder Recorder
	notifier Notifier
	config   Config
	logger   *slog.Logger
	entries  map[string]cron.EntryID
	stopped  chan struct{}
	stopOnce sync.Once
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRecorder reports every job run to r.
func WithRecorder(r Recorder) Option {
	return func(s *Scheduler) { s.recorder = r }
}

// WithNotifier sends each guild's sweep report to n.
func WithNotifier(n Notifier) Option {
	return func(s *Scheduler) { s.notifier = n }
}

// New creates a Scheduler and registers its jobs. Invalid cron expressions are errors.
func New(cfg Config, jobs Jobs, logger *slog.Logger, opts ...Option) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TriggerTimeout <= 0 {
		cfg.TriggerTimeout = 10 * time.Minute
	}
	s := &Scheduler{
		cron:    newCron(logger),
		jobs:    jobs,
		config:  cfg,
		logger:  logger,
		entries: make(map[string]cron.EntryID),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.register(SweepJob, cfg.SweepSchedule, s.RunSweep); err != nil {
		return nil, err
	}
	if err := s.register(QueueJob, cfg.QueueSchedule, s.RunQueue); err != nil {
		return nil, err
	}
	return s, nil
}

func newCron(logger *slog.Logger) *cron.Cron {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return cron.New(
		cron.WithParser(parser),
		cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
	)
}

func (s *Scheduler) register(name, schedule string, run func(context.Context) error) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return nil
	}
	id, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.config.TriggerTimeout)
		defer cancel()
		_ = run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression for %s: %w", name, err)
	}
	s.entries[name] = id
	s.logger.Info("scheduler job registered", "job", name, "schedule", schedule)
	return nil
}

// Jobs returns the names of the registered jobs.
func (s *Scheduler) Jobs() []string {
	var names []string
	for _, name := range []string{SweepJob, QueueJob} {
		if _, ok := s.entries[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// RunSweep sweeps every guild once and announces the reports.
func (s *Scheduler) RunSweep(ctx context.Context) error {
	start := time.Now()
	reports, err := s.jobs.SweepAll(ctx)
	s.finish(SweepJob, start, err)
	inactive, warned := 0, 0
	for _, r := range reports {
		inactive += len(r.Inactive)
		warned += len(r.Warnings)
		if s.notifier != nil && (len(r.Inactive) > 0 || len(r.Warnings) > 0) {
			s.notifier.AnnounceInactivity(ctx, r)
		}
	}
	s.logger.Info("inactivity sweep finished", "guilds", len(reports), "inactive", inactive, "warned", warned)
	return err
}

// RunQueue flushes every guild's upgrade queue once.
func (s *Scheduler) RunQueue(ctx context.Context) error {
	start := time.Now()
	n, err := s.jobs.ProcessAllQueues(ctx)
	s.finish(QueueJob, start, err)
	s.logger.Info("upgrade queue processed", "entries", n)
	return err
}

func (s *Scheduler) finish(job string, start time.Time, err error) {
	took := time.Since(start)
	if s.recorder != nil {
		s.recorder.JobRan(job, took, err)
	}
	if err != nil {
		s.logger.Error("scheduled job failed", "job", job, "took", took, "error", err)
	}
}

// Run starts the cron loop and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.entries))
	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop gracefully stops the scheduler. Safe to call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		stopCtx := s.cron.Stop()
		<-stopCtx.Done()
		close(s.stopped)
		s.logger.Info("scheduler stopped")
	})
}

// Done returns a channel that is closed when the scheduler has fully stopped.
func (s *Scheduler) Done() <-chan struct{} {
	return s.stopped
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct{ l *slog.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error(msg, append(keysAndValues, "error", err)...)
}
