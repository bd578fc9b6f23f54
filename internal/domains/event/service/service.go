package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Event=MockEventService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	approvalDto "lodge/internal/domains/approval/model/dto"
	approvalService "lodge/internal/domains/approval/service"
	"lodge/internal/domains/event/model"
	"lodge/internal/domains/event/model/dto"
	"lodge/internal/domains/event/repository"
	pricingService "lodge/internal/domains/pricing/service"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	maxRetriesDefault       = 3
	defaultBatchSizeDefault = 10
	maxBatchSizeDefault     = 100
	staleAfterDefault       = 2 * time.Minute

	abandonedReason = "abandoned while processing"
)

type Event interface {
	Enqueue(ctx context.Context, req dto.EnqueueRequest) (dto.EventResponse, error)
	ProcessBatch(ctx context.Context, batchSize int) (dto.ProcessResult, error)
	ReclaimStale(ctx context.Context) (dto.ReclaimResult, error)
	List(ctx context.Context, params gDto.QueryParams, status string) (dto.GetEventsResponse, error)
}

type serviceImpl struct {
	repo     repository.Event
	roomRepo roomRepo.Room
	pricing  pricingService.Pricing
	approval approvalService.Approval
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Event,
	roomRepo roomRepo.Room,
	pricing pricingService.Pricing,
	approval approvalService.Approval,
	cfg *config.Config,
	otel otel.Otel,
) Event {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		pricing:  pricing,
		approval: approval,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Enqueue(ctx context.Context, req dto.EnqueueRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Enqueue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event := req.ToModel()

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Str("event_type", event.EventType).Str("room_id", event.RoomID).Msg("failed to enqueue pricing event")

		return res, fmt.Errorf("failed to enqueue pricing event: %w", err)
	}

	log.Debug().Str("event_id", event.ID).Str("event_type", event.EventType).Int("priority", event.Priority).Msg("pricing event enqueued")

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) batchSize(requested int) int {
	size := requested
	if size <= 0 {
		size = s.cfg.Pricing.DefaultBatchSize
	}

	if size <= 0 {
		size = defaultBatchSizeDefault
	}

	limit := s.cfg.Pricing.MaxBatchSize
	if limit <= 0 {
		limit = maxBatchSizeDefault
	}

	return min(size, limit)
}

func (s *serviceImpl) maxRetries() int {
	if s.cfg.Pricing.MaxRetries <= 0 {
		return maxRetriesDefault
	}

	return s.cfg.Pricing.MaxRetries
}

// ProcessBatch drains up to batchSize pending events one at a time. A failing event is recorded on its row and never aborts the batch.
func (s *serviceImpl) ProcessBatch(ctx context.Context, batchSize int) (res dto.ProcessResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessBatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	size := s.batchSize(batchSize)
	scope.SetAttribute("event.batch_size", size)

	events, err := s.repo.ListPending(ctx, size)
	if err != nil {
		log.Error().Err(err).Msg("failed to list pending events")

		return res, fmt.Errorf("failed to list pending events: %w", err)
	}

	for _, candidate := range events {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("event batch interrupted")

			break
		}

		event, claimed, err := s.repo.Claim(ctx, candidate.ID, timezone.Now())
		if err != nil {
			log.Error().Err(err).Str("event_id", candidate.ID).Msg("failed to claim event")

			res.Errors++

			continue
		}

		if !claimed {
			log.Debug().Str("event_id", candidate.ID).Msg("event claimed by another processor")

			continue
		}

		if s.settle(ctx, event, s.dispatch(ctx, event)) {
			res.EventsProcessed++
		} else {
			res.Errors++
		}
	}

	log.Info().Int("processed", res.EventsProcessed).Int("errors", res.Errors).Msg("event batch finished")

	return res, nil
}

// settle writes the outcome back to the claimed row and reports whether the event completed.
func (s *serviceImpl) settle(ctx context.Context, event model.PricingEvent, dispatchErr error) bool {
	now := timezone.Now()
	filter := gDto.And(gDto.Eq(model.TableName, model.FieldID, event.ID))

	// the row is written with a context that outlives a cancelled batch so a claimed event is never stranded in processing
	writeCtx := context.WithoutCancel(ctx)

	if dispatchErr == nil {
		err := s.repo.Update(writeCtx, map[string]any{
			model.FieldProcessed:    true,
			model.FieldStatus:       model.StatusCompleted,
			model.FieldCompletedAt:  now,
			model.FieldErrorMessage: constant.Empty,
		}, filter)
		if err != nil {
			log.Error().Err(err).Str("event_id", event.ID).Msg("failed to complete event")

			return false
		}

		return true
	}

	retries := event.RetryCount + 1
	status := model.StatusPending
	permanent := failure.IsPermanent(dispatchErr)

	if permanent || retries >= s.maxRetries() {
		status = model.StatusFailed
	}

	log.Warn().
		Err(dispatchErr).
		Str("event_id", event.ID).
		Str("event_type", event.EventType).
		Int("retry_count", retries).
		Bool("permanent", permanent).
		Str("status", status).
		Msg("pricing event failed")

	err := s.repo.Update(writeCtx, map[string]any{
		model.FieldRetryCount:   retries,
		model.FieldStatus:       status,
		model.FieldErrorMessage: dispatchErr.Error(),
	}, filter)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("failed to record event failure")
	}

	return false
}

func (s *serviceImpl) staleAfter() time.Duration {
	if seconds := s.cfg.Scheduler.StaleEventSeconds; seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return staleAfterDefault
}

// ReclaimStale releases events whose processor died between claim and settle. The lost run
// counts as an attempt, so an event that keeps getting abandoned still reaches failed.
func (s *serviceImpl) ReclaimStale(ctx context.Context) (res dto.ReclaimResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReclaimStale")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cutoff := timezone.Now().Add(-s.staleAfter())

	events, err := s.repo.Reclaim(ctx, cutoff, s.maxRetries(), abandonedReason)
	if err != nil {
		log.Error().Err(err).Time("cutoff", cutoff).Msg("failed to reclaim stale events")

		return res, fmt.Errorf("failed to reclaim stale events: %w", err)
	}

	for _, event := range events {
		if event.Status == model.StatusFailed {
			res.Failed++
		} else {
			res.Requeued++
		}

		log.Warn().
			Str("event_id", event.ID).
			Str("event_type", event.EventType).
			Int("retry_count", event.RetryCount).
			Str("status", event.Status).
			Msg("stale pricing event reclaimed")
	}

	return res, nil
}

func (s *serviceImpl) dispatch(ctx context.Context, event model.PricingEvent) error {
	date := timezone.Today()

	if event.Payload.Date != constant.Empty {
		parsed, err := timezone.ParseDate(event.Payload.Date)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid payload date %q", event.Payload.Date)) // nolint:wrapcheck
		}

		date = parsed
	}

	switch {
	case event.EventType == model.TypeTimeTrigger && event.RoomID == constant.Empty:
		return s.recalculateAll(ctx, date)
	case model.Recalculates(event.EventType):
		_, err := s.pricing.Calculate(ctx, event.RoomID, date, true)

		return err //nolint:wrapcheck
	case event.EventType == model.TypeManualOverride:
		_, err := s.approval.Gate(ctx, approvalDto.GateRequest{
			EventID:     event.ID,
			RoomID:      event.RoomID,
			Date:        date,
			NewPrice:    event.Payload.NewPrice,
			RequestedBy: event.Payload.RequestedBy,
		})

		return err //nolint:wrapcheck
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unsupported event type %q", event.EventType)) // nolint:wrapcheck
	}
}

func (s *serviceImpl) recalculateAll(ctx context.Context, date time.Time) error {
	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, roomRepo.AutoPricingFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to list auto pricing rooms")

		return fmt.Errorf("failed to list auto pricing rooms: %w", err)
	}

	roomIDs := make([]string, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	var errs []error

	for _, item := range s.pricing.BatchCalculate(ctx, roomIDs, date, true) {
		if !item.Success {
			errs = append(errs, fmt.Errorf("room %s: %s", item.RoomID, item.Error))
		}
	}

	log.Info().Int("rooms", len(rooms)).Int("failed", len(errs)).Str("date", date.Format(constant.DateOnlyFormat)).Msg("time trigger recalculated rooms")

	return errors.Join(errs...)
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListEvents")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if status != constant.Empty {
		filter = gDto.And(gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	events, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list events")

		return res, fmt.Errorf("failed to list events: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	res.FromModels(events, total, params.Limit)

	return res, nil
}
