package event

import (
	"net/http"
	"time"

	"lodge/infras/otel"
	"lodge/internal/domains/event/model/dto"
	"lodge/internal/domains/event/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/process-events", handler.ProcessEvents)
	router.Post("/events", handler.EnqueueEvent)
	router.Get("/events", handler.GetEvents)
}

// ProcessEvents drains one batch of the pricing event queue.
// @Summary Process queued pricing events
// @Description Takes up to batch_size pending events (default 10, max 100) in priority order. Failed events are retried on later batches.
// @Tags Pricing Events
// @Accept json
// @Produce json
// @Param request body dto.ProcessRequest false "Process Request"
// @Success 200 {object} response.Envelope[dto.ProcessResult]
// @Failure 400 {object} response.Envelope[any]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/pricing/process-events [post]
func (handler *Handler) ProcessEvents(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessEvents")
	defer scope.End()

	req := dto.ProcessRequest{}

	if err := validator.ValidateOptional(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(writer, err, started)

		return
	}

	result, err := handler.service.ProcessBatch(ctx, req.BatchSize)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process events")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, result, started, response.WithEventsProcessed(result.EventsProcessed))
}

// EnqueueEvent appends an event to the pricing queue.
// @Summary Enqueue a pricing event
// @Description A time_trigger without room_id reprices every auto-pricing room. A manual_override carries payload.new_price and goes through approval.
// @Tags Pricing Events
// @Accept json
// @Produce json
// @Param request body dto.EnqueueRequest true "Enqueue Request"
// @Success 201 {object} response.Envelope[dto.EventResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/pricing/events [post]
func (handler *Handler) EnqueueEvent(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EnqueueEvent")
	defer scope.End()

	req := dto.EnqueueRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(writer, err, started)

		return
	}

	if req.Payload.RequestedBy == constant.Empty {
		req.Payload.RequestedBy, _ = ctx.Value(constant.ContextKeyUserID).(string)
	}

	event, err := handler.service.Enqueue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to enqueue event")

		response.WithFailure(writer, err, started)

		return
	}

	scope.AddEvent("pricing event enqueued " + event.ID)

	response.WithSuccess(writer, http.StatusCreated, event, started)
}

// GetEvents lists queued and processed events.
// @Summary List pricing events
// @Tags Pricing Events
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, processing, completed, failed)"
// @Success 200 {object} response.Envelope[dto.GetEventsResponse]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/pricing/events [get]
func (handler *Handler) GetEvents(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid query parameters")

		response.WithFailure(writer, err, started)

		return
	}

	events, err := handler.service.List(ctx, queryParams, request.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list events")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, events, started)
}
