package worker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	approvalService "lodge/internal/domains/approval/service"
	eventModel "lodge/internal/domains/event/model"
	eventDto "lodge/internal/domains/event/model/dto"
	eventService "lodge/internal/domains/event/service"
	monitorService "lodge/internal/domains/monitor/service"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	JobProcessEvents = "process_events"
	JobMonitor       = "monitor_cycle"
	JobApprovalSweep = "approval_sweep"
	JobReclaimEvents = "reclaim_events"
	JobTimeTrigger   = "time_trigger"

	defaultJobTimeout = 50 * time.Second
)

// Job is one scheduled unit of work; it must return before ctx is done.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

type Worker struct {
	Config    *config.Config
	Events    eventService.Event
	Monitor   monitorService.Monitor
	Approvals approvalService.Approval

	otel otel.Otel
	cron *cron.Cron
}

func New(
	cfg *config.Config,
	events eventService.Event,
	monitor monitorService.Monitor,
	approvals approvalService.Approval,
	ot otel.Otel,
) *Worker {
	logger := cronLogger{}

	return &Worker{
		Config:    cfg,
		Events:    events,
		Monitor:   monitor,
		Approvals: approvals,
		otel:      ot,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

func (w *Worker) Jobs() []Job {
	scheduler := w.Config.Scheduler

	return []Job{
		{Name: JobProcessEvents, Spec: scheduler.ProcessEventsSpec, Run: w.processEvents},
		{Name: JobMonitor, Spec: scheduler.MonitorSpec, Run: w.monitorCycle},
		{Name: JobApprovalSweep, Spec: scheduler.ApprovalSweepSpec, Run: w.sweepApprovals},
		{Name: JobReclaimEvents, Spec: scheduler.ReclaimEventsSpec, Run: w.reclaimEvents},
		{Name: JobTimeTrigger, Spec: scheduler.TimeTriggerSpec, Run: w.enqueueTimeTrigger},
	}
}

// Start registers every job with a non-empty spec and starts the scheduler.
func (w *Worker) Start() error {
	for _, job := range w.Jobs() {
		if job.Spec == constant.Empty {
			log.Warn().Str("job", job.Name).Msg("job has no schedule, skipping")

			continue
		}

		if _, err := w.cron.AddFunc(job.Spec, w.wrap(job)); err != nil {
			return fmt.Errorf("failed to schedule %s with %q: %w", job.Name, job.Spec, err)
		}

		log.Info().Str("job", job.Name).Str("spec", job.Spec).Msg("job scheduled")
	}

	w.cron.Start()

	log.Info().Int("jobs", len(w.cron.Entries())).Msg("Worker started.")

	return nil
}

// Stop waits for running jobs to finish.
func (w *Worker) Stop() {
	<-w.cron.Stop().Done()

	log.Info().Msg("Worker stopped.")
}

// Run starts the scheduler and blocks until SIGINT or SIGTERM.
func (w *Worker) Run() {
	if err := w.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start worker")
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals

	log.Info().Msg("Received SIGTERM. Waiting for running jobs.")

	w.Stop()
}

func (w *Worker) timeout() time.Duration {
	if seconds := w.Config.Scheduler.JobTimeoutSeconds; seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultJobTimeout
}

func (w *Worker) wrap(job Job) func() {
	return func() {
		_ = w.Execute(job)
	}
}

// Execute runs job once under the job timeout, in its own trace span.
func (w *Worker) Execute(job Job) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout())
	defer cancel()

	ctx, scope := w.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+"."+job.Name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	started := time.Now()

	if err = job.Run(ctx); err != nil {
		log.Error().Err(err).Str("job", job.Name).Dur("took", time.Since(started)).Msg("job failed")

		return err
	}

	log.Debug().Str("job", job.Name).Dur("took", time.Since(started)).Msg("job finished")

	return nil
}

func (w *Worker) processEvents(ctx context.Context) error {
	res, err := w.Events.ProcessBatch(ctx, w.Config.Scheduler.ProcessEventsBatchSize)
	if err != nil {
		return fmt.Errorf("failed to process events: %w", err)
	}

	if res.EventsProcessed > 0 || res.Errors > 0 {
		log.Info().Int("processed", res.EventsProcessed).Int("errors", res.Errors).Msg("pricing events processed")
	}

	return nil
}

func (w *Worker) monitorCycle(ctx context.Context) error {
	res, err := w.Monitor.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("monitoring cycle incomplete: %w", err)
	}

	if res.Alerts.Triggered > 0 || res.Alerts.Resolved > 0 {
		log.Info().Int("triggered", res.Alerts.Triggered).Int("resolved", res.Alerts.Resolved).Msg("alert state changed")
	}

	return nil
}

func (w *Worker) sweepApprovals(ctx context.Context) error {
	count, err := w.Approvals.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep approvals: %w", err)
	}

	if count > 0 {
		log.Info().Int("expired", count).Msg("pending approvals expired")
	}

	return nil
}

func (w *Worker) reclaimEvents(ctx context.Context) error {
	res, err := w.Events.ReclaimStale(ctx)
	if err != nil {
		return fmt.Errorf("failed to reclaim stale events: %w", err)
	}

	if res.Requeued > 0 || res.Failed > 0 {
		log.Warn().Int("requeued", res.Requeued).Int("failed", res.Failed).Msg("abandoned pricing events reclaimed")
	}

	return nil
}

// enqueueTimeTrigger queues the nightly repricing of every auto-pricing room for today.
func (w *Worker) enqueueTimeTrigger(ctx context.Context) error {
	event, err := w.Events.Enqueue(ctx, eventDto.EnqueueRequest{
		EventType: eventModel.TypeTimeTrigger,
		Priority:  w.Config.Scheduler.TimeTriggerPriority,
		Payload: eventModel.Payload{
			Date:   timezone.Today().Format(constant.DateOnlyFormat),
			Reason: "scheduled reprice",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue time trigger: %w", err)
	}

	log.Info().Str("event_id", event.ID).Str("date", event.Payload.Date).Msg("time trigger queued")

	return nil
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
