package approval

import (
	"net/http"
	"time"

	"lodge/infras/otel"
	"lodge/internal/domains/approval/model/dto"
	"lodge/internal/domains/approval/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Approval
	otel    otel.Otel
}

func New(service service.Approval, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/approvals", func(r chi.Router) {
		r.Get("/", handler.GetApprovals)
		r.Post("/{id}/approve", handler.Approve)
		r.Post("/{id}/reject", handler.Reject)
	})
}

// GetApprovals lists price approvals.
// @Summary List price approvals
// @Tags Pricing Approvals
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, auto_approved, approved, rejected)"
// @Success 200 {object} response.Envelope[dto.GetApprovalsResponse]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/pricing/approvals [get]
func (handler *Handler) GetApprovals(writer http.ResponseWriter, request *http.Request) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid query parameters")

		response.WithFailure(writer, err, started)

		return
	}

	approvals, err := handler.service.List(ctx, queryParams, request.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list approvals")

		response.WithFailure(writer, err, started)

		return
	}

	response.WithSuccess(writer, http.StatusOK, approvals, started)
}

// Approve applies a pending manual price.
// @Summary Approve a pending price change
// @Tags Pricing Approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param request body dto.RespondRequest false "Respond Request"
// @Success 200 {object} response.Envelope[dto.ApprovalResponse]
// @Failure 404 {object} response.Envelope[any]
// @Failure 409 {object} response.Envelope[any]
// @Failure 500 {object} response.Envelope[any]
// @Router /v1/pricing/approvals/{id}/approve [post]
func (handler *Handler) Approve(writer http.ResponseWriter, request *http.Request) {
	handler.respond(writer, request, true)
}

// Reject discards a pending manual price.
// @Summary Reject a pending price change
// @Tags Pricing Approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param request body dto.RespondRequest false "Respond Request"
// @Success 200 {object} response.Envelope[dto.ApprovalResponse]
// @Failure 404 {object} response.Envelope[any]
// @Failure 409 {object} response.Envelope[any]
// @Router /v1/pricing/approvals/{id}/reject [post]
func (handler *Handler) Reject(writer http.ResponseWriter, request *http.Request) {
	handler.respond(writer, request, false)
}

func (handler *Handler) respond(writer http.ResponseWriter, request *http.Request, approve bool) {
	started := time.Now()

	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondApproval")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.RespondRequest{}

	if err := validator.ValidateOptional(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(writer, err, started)

		return
	}

	actor := req.RespondedBy
	if actor == constant.Empty {
		actor, _ = ctx.Value(constant.ContextKeyUserID).(string)
	}

	approval, err := handler.service.Respond(ctx, id, approve, actor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("approval_id", id).Bool("approve", approve).Msg("failed to respond to approval")

		response.WithFailure(writer, err, started)

		return
	}

	scope.AddEvent("approval " + id + " " + approval.Status)

	response.WithSuccess(writer, http.StatusOK, approval, started)
}
