package service_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"lodge/config"
	"lodge/infras/otel/mocks"
	approvalMocks "lodge/internal/domains/approval/mocks"
	approvalModel "lodge/internal/domains/approval/model"
	approvalDto "lodge/internal/domains/approval/model/dto"
	eventMocks "lodge/internal/domains/event/mocks"
	"lodge/internal/domains/event/model"
	"lodge/internal/domains/event/model/dto"
	"lodge/internal/domains/event/service"
	pricingMocks "lodge/internal/domains/pricing/mocks"
	pricingModel "lodge/internal/domains/pricing/model"
	pricingDto "lodge/internal/domains/pricing/model/dto"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryQueue mirrors the pricing_events queries closely enough to observe queue state across batches.
type memoryQueue struct {
	mu     sync.Mutex
	events map[string]*model.PricingEvent
	// stolen ids are claimed by someone else before this processor gets to them
	stolen map[string]bool
}

func newMemoryQueue(events ...model.PricingEvent) *memoryQueue {
	q := &memoryQueue{events: map[string]*model.PricingEvent{}, stolen: map[string]bool{}}

	for _, event := range events {
		q.events[event.ID] = &event
	}

	return q
}

func (q *memoryQueue) Insert(_ context.Context, event model.PricingEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events[event.ID] = &event

	return nil
}

func (q *memoryQueue) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.PricingEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if event, ok := q.events[filterID(filter)]; ok {
		return *event, nil
	}

	return model.PricingEvent{}, nil
}

func (q *memoryQueue) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.PricingEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := []model.PricingEvent{}
	for _, event := range q.events {
		events = append(events, *event)
	}

	return events, nil
}

func (q *memoryQueue) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.events), nil
}

func (q *memoryQueue) Update(_ context.Context, req map[string]any, filter gDto.FilterGroup) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	event, ok := q.events[filterID(filter)]
	if !ok {
		return errors.New("no rows")
	}

	for field, value := range req {
		switch field {
		case model.FieldProcessed:
			event.Processed = value.(bool)
		case model.FieldStatus:
			event.Status = value.(string)
		case model.FieldRetryCount:
			event.RetryCount = value.(int)
		case model.FieldErrorMessage:
			event.ErrorMessage = value.(string)
		case model.FieldCompletedAt:
			event.CompletedAt.Time, event.CompletedAt.Valid = value.(time.Time), true
		}
	}

	return nil
}

func (q *memoryQueue) ListPending(_ context.Context, limit int) ([]model.PricingEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending := []model.PricingEvent{}
	for _, event := range q.events {
		if !event.Processed && event.Status == model.StatusPending {
			pending = append(pending, *event)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		if pending[i].Priority != pending[j].Priority {
			return pending[i].Priority > pending[j].Priority
		}

		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}

	return pending, nil
}

func (q *memoryQueue) Claim(_ context.Context, id string, startedAt time.Time) (model.PricingEvent, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	event, ok := q.events[id]
	if !ok || q.stolen[id] || event.Status != model.StatusPending || event.Processed {
		return model.PricingEvent{}, false, nil
	}

	event.Status = model.StatusProcessing
	event.StartedAt.Time, event.StartedAt.Valid = startedAt, true

	return *event, true, nil
}

func (q *memoryQueue) Reclaim(_ context.Context, cutoff time.Time, maxRetries int, reason string) ([]model.PricingEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	reclaimed := []model.PricingEvent{}

	for _, event := range q.events {
		if event.Processed || event.Status != model.StatusProcessing || !event.StartedAt.Time.Before(cutoff) {
			continue
		}

		event.RetryCount++
		event.ErrorMessage = reason
		event.Status = model.StatusPending

		if event.RetryCount >= maxRetries {
			event.Status = model.StatusFailed
		}

		reclaimed = append(reclaimed, *event)
	}

	return reclaimed, nil
}

func (q *memoryQueue) get(id string) model.PricingEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	return *q.events[id]
}

func filterID(filter gDto.FilterGroup) string {
	for _, f := range filter.Filters {
		if flt, ok := f.(gDto.Filter); ok && flt.Field == model.FieldID {
			id, _ := flt.Value.(string)

			return id
		}
	}

	return ""
}

type eventFixture struct {
	queue    *memoryQueue
	roomRepo *roomMocks.MockRoom
	pricing  *pricingMocks.MockPricing
	approval *approvalMocks.MockApprovalService
	svc      service.Event
}

func newEventFixture(t *testing.T, events ...model.PricingEvent) *eventFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Pricing.MaxRetries = 3
	cfg.Pricing.DefaultBatchSize = 10
	cfg.Pricing.MaxBatchSize = 100

	f := &eventFixture{
		queue:    newMemoryQueue(events...),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		pricing:  pricingMocks.NewMockPricing(ctrl),
		approval: approvalMocks.NewMockApprovalService(ctrl),
	}

	f.svc = service.New(f.queue, f.roomRepo, f.pricing, f.approval, cfg, mocks.NewOtel())

	return f
}

func pendingEvent(id, eventType, roomID string, priority int, createdAt time.Time) model.PricingEvent {
	return model.PricingEvent{
		ID:        id,
		EventType: eventType,
		RoomID:    roomID,
		Priority:  priority,
		Status:    model.StatusPending,
		CreatedAt: createdAt,
		Payload:   model.Payload{Date: "2026-10-27"},
	}
}

var (
	base  = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	night = time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC)
)

func TestEventService_ProcessBatch_CompletesInPriorityOrder(t *testing.T) {
	f := newEventFixture(t,
		pendingEvent("low", model.TypeOccupancyUpdate, "room-1", model.PriorityLow, base),
		pendingEvent("high-late", model.TypeBookingChange, "room-2", model.PriorityHigh, base.Add(time.Minute)),
		pendingEvent("high-early", model.TypeBookingChange, "room-3", model.PriorityHigh, base),
	)

	var order []string

	f.pricing.EXPECT().Calculate(gomock.Any(), gomock.Any(), night, true).
		DoAndReturn(func(_ context.Context, roomID string, _ time.Time, _ bool) (pricingModel.PricingFactors, error) {
			order = append(order, roomID)

			return pricingModel.PricingFactors{RoomID: roomID}, nil
		}).Times(3)

	res, err := f.svc.ProcessBatch(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, dto.ProcessResult{EventsProcessed: 3, Errors: 0}, res)
	assert.Equal(t, []string{"room-3", "room-2", "room-1"}, order)

	completed := f.queue.get("low")
	assert.True(t, completed.Processed)
	assert.Equal(t, model.StatusCompleted, completed.Status)
	assert.True(t, completed.CompletedAt.Valid)
}

func TestEventService_ProcessBatch_RespectsBatchSize(t *testing.T) {
	f := newEventFixture(t,
		pendingEvent("a", model.TypeBookingChange, "room-1", model.PriorityNormal, base),
		pendingEvent("b", model.TypeBookingChange, "room-1", model.PriorityNormal, base.Add(time.Second)),
	)

	f.pricing.EXPECT().Calculate(gomock.Any(), "room-1", night, true).Return(pricingModel.PricingFactors{}, nil).Times(1)

	res, err := f.svc.ProcessBatch(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.EventsProcessed)
	assert.Equal(t, model.StatusPending, f.queue.get("b").Status)
}

func TestEventService_ProcessBatch_RetryCap(t *testing.T) {
	f := newEventFixture(t, pendingEvent("evt-1", model.TypeCompetitorChange, "room-1", model.PriorityNormal, base))

	f.pricing.EXPECT().Calculate(gomock.Any(), "room-1", night, true).
		Return(pricingModel.PricingFactors{}, errors.New("connection refused")).
		Times(3)

	for attempt := 1; attempt <= 3; attempt++ {
		res, err := f.svc.ProcessBatch(context.Background(), 10)
		require.NoError(t, err)

		assert.Equal(t, 1, res.Errors)
		assert.Equal(t, attempt, f.queue.get("evt-1").RetryCount)
	}

	failed := f.queue.get("evt-1")
	assert.Equal(t, model.StatusFailed, failed.Status)
	assert.False(t, failed.Processed)
	assert.Equal(t, "connection refused", failed.ErrorMessage)

	// a failed event is never picked up again
	res, err := f.svc.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, dto.ProcessResult{}, res)
}

func TestEventService_ProcessBatch_PermanentFailureSkipsRetries(t *testing.T) {
	invalidDate := pendingEvent("bad-date", model.TypeBookingChange, "room-1", model.PriorityNormal, base)
	invalidDate.Payload.Date = "27/10/2026"

	f := newEventFixture(t,
		pendingEvent("ghost", model.TypeBookingChange, "ghost-room", model.PriorityNormal, base),
		invalidDate,
	)

	f.pricing.EXPECT().Calculate(gomock.Any(), "ghost-room", night, true).
		Return(pricingModel.PricingFactors{}, failure.NotFound("room ghost-room not found"))

	res, err := f.svc.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Errors)

	for _, id := range []string{"ghost", "bad-date"} {
		event := f.queue.get(id)

		assert.Equal(t, model.StatusFailed, event.Status, id)
		assert.Equal(t, 1, event.RetryCount, id)
	}
}

func TestEventService_ProcessBatch_SkipsEventsClaimedElsewhere(t *testing.T) {
	f := newEventFixture(t,
		pendingEvent("mine", model.TypeBookingChange, "room-1", model.PriorityNormal, base),
		pendingEvent("theirs", model.TypeBookingChange, "room-2", model.PriorityNormal, base.Add(time.Second)),
	)
	f.queue.stolen["theirs"] = true

	f.pricing.EXPECT().Calculate(gomock.Any(), "room-1", night, true).Return(pricingModel.PricingFactors{}, nil)

	res, err := f.svc.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, dto.ProcessResult{EventsProcessed: 1}, res)
}

func TestEventService_ProcessBatch_ManualOverrideGoesThroughGate(t *testing.T) {
	event := pendingEvent("override", model.TypeManualOverride, "room-1", model.PriorityHigh, base)
	event.Payload.NewPrice = 650000
	event.Payload.RequestedBy = "front-desk"

	f := newEventFixture(t, event)

	f.approval.EXPECT().Gate(gomock.Any(), approvalDto.GateRequest{
		EventID:     "override",
		RoomID:      "room-1",
		Date:        night,
		NewPrice:    650000,
		RequestedBy: "front-desk",
	}).Return(approvalModel.PriceApproval{Status: approvalModel.StatusPending}, nil)

	res, err := f.svc.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, res.EventsProcessed)
}

func TestEventService_ProcessBatch_TimeTriggerRecalculatesAutoRooms(t *testing.T) {
	f := newEventFixture(t, pendingEvent("nightly", model.TypeTimeTrigger, "", model.PriorityLow, base))

	f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{{ID: "room-1"}, {ID: "room-2"}}, nil)
	f.pricing.EXPECT().BatchCalculate(gomock.Any(), []string{"room-1", "room-2"}, night, true).
		Return([]pricingDto.BatchItem{
			{RoomID: "room-1", Success: true},
			{RoomID: "room-2", Success: false, Error: "connection reset"},
		})

	res, err := f.svc.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Errors)

	event := f.queue.get("nightly")
	assert.Equal(t, model.StatusPending, event.Status)
	assert.Contains(t, event.ErrorMessage, "room room-2")
}

func TestEventService_Enqueue(t *testing.T) {
	f := newEventFixture(t)

	res, err := f.svc.Enqueue(context.Background(), dto.EnqueueRequest{
		EventType: model.TypeCompetitorChange,
		RoomID:    "room-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, model.PriorityNormal, res.Priority)
	assert.Equal(t, model.StatusPending, res.Status)

	stored := f.queue.get(res.ID)
	assert.False(t, stored.Processed)
	assert.Zero(t, stored.RetryCount)
}

func TestEventService_List(t *testing.T) {
	f := newEventFixture(t,
		pendingEvent("a", model.TypeBookingChange, "room-1", model.PriorityNormal, base),
		pendingEvent("b", model.TypeBookingChange, "room-2", model.PriorityNormal, base),
	)

	res, err := f.svc.List(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusPending)
	require.NoError(t, err)

	ids := []string{res.Events[0].ID, res.Events[1].ID}
	slices.Sort(ids)

	assert.Equal(t, []string{"a", "b"}, ids)
	assert.Equal(t, 2, res.TotalData)
}

func processingEvent(id string, retries int, startedAt time.Time) model.PricingEvent {
	event := pendingEvent(id, model.TypeBookingChange, "room-1", model.PriorityNormal, base)
	event.Status = model.StatusProcessing
	event.RetryCount = retries
	event.StartedAt.Time, event.StartedAt.Valid = startedAt, true

	return event
}

func TestEventService_ReclaimStale(t *testing.T) {
	now := time.Now()

	f := newEventFixture(t,
		processingEvent("abandoned", 0, now.Add(-time.Hour)),
		processingEvent("last-chance", 2, now.Add(-time.Hour)),
		processingEvent("in-flight", 0, now),
	)

	res, err := f.svc.ReclaimStale(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.ReclaimResult{Requeued: 1, Failed: 1}, res)

	requeued := f.queue.get("abandoned")
	assert.Equal(t, model.StatusPending, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
	assert.NotEmpty(t, requeued.ErrorMessage)

	failed := f.queue.get("last-chance")
	assert.Equal(t, model.StatusFailed, failed.Status)
	assert.Equal(t, 3, failed.RetryCount)
	assert.False(t, failed.Processed)

	assert.Equal(t, model.StatusProcessing, f.queue.get("in-flight").Status)
}

func TestEventService_ReclaimStale_EventIsProcessedAgain(t *testing.T) {
	f := newEventFixture(t, processingEvent("abandoned", 0, time.Now().Add(-time.Hour)))

	_, err := f.svc.ReclaimStale(context.Background())
	require.NoError(t, err)

	f.pricing.EXPECT().Calculate(gomock.Any(), "room-1", night, true).Return(pricingModel.PricingFactors{}, nil)

	res, err := f.svc.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, dto.ProcessResult{EventsProcessed: 1}, res)

	completed := f.queue.get("abandoned")
	assert.Equal(t, model.StatusCompleted, completed.Status)
	assert.True(t, completed.Processed)
	assert.Empty(t, completed.ErrorMessage)
}

func TestEventService_ReclaimStale_UsesConfiguredWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := eventMocks.NewMockEvent(ctrl)

	cfg := &config.Config{}
	cfg.Pricing.MaxRetries = 5
	cfg.Scheduler.StaleEventSeconds = 600

	svc := service.New(repo, roomMocks.NewMockRoom(ctrl), pricingMocks.NewMockPricing(ctrl), approvalMocks.NewMockApprovalService(ctrl), cfg, mocks.NewOtel())

	before := time.Now()

	repo.EXPECT().Reclaim(gomock.Any(), gomock.Any(), 5, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time, _ int, _ string) ([]model.PricingEvent, error) {
			assert.WithinDuration(t, before.Add(-10*time.Minute), cutoff, 5*time.Second)

			return nil, errors.New("deadlock detected")
		})

	_, err := svc.ReclaimStale(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}
