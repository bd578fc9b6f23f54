package pricing

import (
	"net/http"
	"time"

	"lodge/infras/otel"
	"lodge/internal/domains/pricing/model/dto"
	"lodge/internal/domains/pricing/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/calculate", handler.Calculate)
	router.Post("/batch-calculate", handler.BatchCalculate)
}

// Calculate prices one room for one night.
// @Summary Calculate a room price
// @Description Returns the cached price while it is valid unless force_recalculate is set. date defaults to today.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Calculate Request"
// @Success 200 {object} response.Envelope[model.PricingFactors]
// @Failure 400 {object} response.Envelope[any]
// @Failure 404 {object} response.Envelope[any]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/pricing/calculate [post]
func (handler *Handler) Calculate(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Calculate")
	defer scope.End()

	req := dto.CalculateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(writer, err, started)

		return
	}

	date, err := timezone.DateOrToday(req.Date)
	if err != nil {
		response.WithFailure(writer, failure.BadRequest(err), started)

		return
	}

	factors, err := handler.service.Calculate(ctx, req.RoomID, date, req.ForceRecalculate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to calculate price")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, factors, started)
}

// BatchCalculate prices several rooms for one night.
// @Summary Calculate prices for several rooms
// @Description Each room is priced independently; a failed room is reported in its item and the request still succeeds.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.BatchCalculateRequest true "Batch Calculate Request"
// @Success 200 {object} response.Envelope[[]dto.BatchItem]
// @Failure 400 {object} response.Envelope[any]
// @Router /v1/pricing/batch-calculate [post]
func (handler *Handler) BatchCalculate(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BatchCalculate")
	defer scope.End()

	req := dto.BatchCalculateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(writer, err, started)

		return
	}

	date, err := timezone.DateOrToday(req.Date)
	if err != nil {
		response.WithFailure(writer, failure.BadRequest(err), started)

		return
	}

	items := handler.service.BatchCalculate(ctx, req.RoomIDs, date, req.ForceRecalculate)

	scope.SetAttribute("pricing.batch_size", len(items))

	response.WithSuccess(writer, http.StatusOK, items, started)
}
