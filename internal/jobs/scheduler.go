package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/redmonkez12/fintrack/internal/logging"
)

// JobRecorder receives the outcome of each run. *metrics.Metrics implements it.
type JobRecorder interface {
	RecordJobRun(job string, affected int64, err error)
}

// RecoveryPurgeJob clears password recovery codes past their TTL
const RecoveryPurgeJob = "recovery_code_purge"

// Task is a unit of scheduled work returning how many rows it changed
type Task func(ctx context.Context) (int64, error)

// Scheduler runs named tasks on cron specs. Runs of the same job never overlap.
type Scheduler struct {
	cron     *cron.Cron
	logger   *logging.Logger
	recorder JobRecorder
	timeout  time.Duration
}

func NewScheduler(logger *logging.Logger, recorder JobRecorder) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		logger:   logger,
		recorder: recorder,
		timeout:  time.Minute,
	}
}

// Add registers task under name. spec accepts cron expressions and descriptors such as "@every 15m".
func (s *Scheduler) Add(name, spec string, task Task) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		s.run(name, task)
	}))

	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}

	s.logger.Info("job scheduled", "job", name, "schedule", spec)
	return nil
}

func (s *Scheduler) run(name string, task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	affected, err := task(ctx)
	if s.recorder != nil {
		s.recorder.RecordJobRun(name, affected, err)
	}

	if err != nil {
		s.logger.Error("job failed", "job", name, "error", err)
		return
	}

	s.logger.Info("job finished",
		"job", name,
		"affected", affected,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// Start runs the scheduler in the background until ctx is done,
// then waits for running jobs to finish.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
}

// RunNow executes a task once, outside the schedule
func (s *Scheduler) RunNow(name string, task Task) {
	s.run(name, task)
}
