package monitor

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lodge/infras/otel"
	"lodge/internal/domains/monitor/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const metricTypeRule = "omitempty,oneof=performance business"

type Handler struct {
	service service.Monitor
	otel    otel.Otel
}

func New(service service.Monitor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/monitor", func(r chi.Router) {
		r.Get("/health", handler.GetHealth)
		r.Get("/alerts", handler.GetAlerts)
		r.Get("/metrics", handler.GetMetrics)
		r.Post("/run", handler.Run)
	})
}

// GetHealth scores the pricing system from its active alerts and recent performance.
// @Summary Pricing system health
// @Tags Monitor
// @Produce json
// @Success 200 {object} response.Envelope[dto.HealthResponse]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/monitor/health [get]
func (handler *Handler) GetHealth(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHealth")
	defer scope.End()

	health, err := handler.service.GetSystemHealth(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get system health")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, health, started)
}

// GetAlerts lists pricing alerts, newest first.
// @Summary List pricing alerts
// @Tags Monitor
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query bool false "Only alerts that are still active"
// @Success 200 {object} response.Envelope[dto.GetAlertsResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/monitor/alerts [get]
func (handler *Handler) GetAlerts(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlerts")
	defer scope.End()

	activeOnly := false

	if raw := request.URL.Query().Get(constant.RequestParamActive); raw != constant.Empty {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.WithFailure(writer, failure.BadRequest(fmt.Errorf("invalid active flag %q: %w", raw, err)), started)

			return
		}

		activeOnly = parsed
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid query parameters")

		response.WithFailure(writer, err, started)

		return
	}

	alerts, err := handler.service.ListAlerts(ctx, queryParams, activeOnly)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list alerts")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, alerts, started)
}

// GetMetrics lists recorded metric samples.
// @Summary List recorded pricing metrics
// @Tags Monitor
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "performance or business"
// @Param name query string false "Metric name"
// @Success 200 {object} response.Envelope[metricDto.GetMetricsResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/monitor/metrics [get]
func (handler *Handler) GetMetrics(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMetrics")
	defer scope.End()

	metricType := request.URL.Query().Get(constant.RequestParamType)

	if err := validator.ValidateVar(metricType, metricTypeRule); err != nil {
		response.WithFailure(writer, err, started)

		return
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid query parameters")

		response.WithFailure(writer, err, started)

		return
	}

	metrics, err := handler.service.ListMetrics(ctx, queryParams, metricType, request.URL.Query().Get(constant.RequestParamName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list metrics")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, metrics, started)
}

// Run collects both metric families and evaluates alert rules once.
// @Summary Run a monitoring cycle
// @Description Partial results are returned when one metric family cannot be collected.
// @Tags Monitor
// @Produce json
// @Success 200 {object} response.Envelope[dto.CycleResult]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/monitor/run [post]
func (handler *Handler) Run(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunMonitor")
	defer scope.End()

	result, err := handler.service.RunCycle(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("monitoring cycle finished with errors")

		if result.Performance == nil && result.Business == nil {
			response.WithFailure(writer, err, started)

			return
		}
	}

	scope.SetAttributes(map[string]any{
		"monitor.triggered": result.Alerts.Triggered,
		"monitor.resolved":  result.Alerts.Resolved,
	})

	response.WithSuccess(writer, http.StatusOK, result, started)
}
