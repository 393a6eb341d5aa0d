package scheduler

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/robfig/cron/v3"
)

// Job is one unit of background work
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron specs
type Scheduler struct {
	cron         *cron.Cron
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	ctx          context.Context
	cancel       context.CancelFunc
}

// NewScheduler creates a scheduler. Panicking jobs are recovered and logged.
func NewScheduler(logger coreport.Logger, timeProvider coreport.TimeProvider) *Scheduler {
	logger = logger.With(map[string]any{"component": "scheduler"})
	cronLog := cronLogger{logger: logger}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger:       logger,
		timeProvider: timeProvider,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// AddJob registers job under spec. An empty spec leaves the job disabled.
func (s *Scheduler) AddJob(name, spec string, job Job) error {
	if spec == "" {
		s.logger.Info("Job disabled", map[string]any{"job": name})
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		start := s.timeProvider.Now()
		if err := job(s.ctx); err != nil {
			s.logger.Error("Job failed", map[string]any{
				"job":         name,
				"error":       err.Error(),
				"duration_ms": s.timeProvider.Since(start).Milliseconds(),
			})
			return
		}
		s.logger.Debug("Job finished", map[string]any{
			"job":         name,
			"duration_ms": s.timeProvider.Since(start).Milliseconds(),
		})
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}

	s.logger.Info("Job scheduled", map[string]any{"job": name, "spec": spec})
	return nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()

	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped", nil)
	return nil
}

// cronLogger adapts the core logger to cron's logger
type cronLogger struct {
	logger coreport.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := toFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error(msg, fields)
}

func toFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
