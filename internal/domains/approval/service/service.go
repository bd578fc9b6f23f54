package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Approval=MockApprovalService

import (
	"context"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/approval/model"
	"lodge/internal/domains/approval/model/dto"
	"lodge/internal/domains/approval/repository"
	notificationModel "lodge/internal/domains/notification/model"
	notificationService "lodge/internal/domains/notification/service"
	pricingService "lodge/internal/domains/pricing/service"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	approvalThresholdDefault     = 10
	approvalWindowMinutesDefault = 30

	// ResponderOperator is recorded when a response carries no actor.
	ResponderOperator = "operator"
)

type Approval interface {
	Gate(ctx context.Context, req dto.GateRequest) (model.PriceApproval, error)
	Respond(ctx context.Context, id string, approve bool, actor string) (dto.ApprovalResponse, error)
	List(ctx context.Context, params gDto.QueryParams, status string) (dto.GetApprovalsResponse, error)
	SweepExpired(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo     repository.Approval
	roomRepo roomRepo.Room
	pricing  pricingService.Pricing
	notifier notificationService.Notification
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Approval,
	roomRepo roomRepo.Room,
	pricing pricingService.Pricing,
	notifier notificationService.Notification,
	cfg *config.Config,
	otel otel.Otel,
) Approval {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		pricing:  pricing,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

// ChangeMagnitude is |new-old|/old in percent. A change away from a zero price always counts as 100%.
func ChangeMagnitude(oldPrice, newPrice float64) float64 {
	if oldPrice <= 0 {
		return constant.Percent
	}

	prev := decimal.NewFromFloat(oldPrice)

	return decimal.NewFromFloat(newPrice).Sub(prev).Abs().Div(prev).Mul(decimal.NewFromInt(constant.Percent)).Round(model.ChangeScale).InexactFloat64()
}

// RequiresApproval treats the threshold as exclusive: a change equal to it passes without approval.
func RequiresApproval(change, threshold float64) bool {
	return decimal.NewFromFloat(change).GreaterThan(decimal.NewFromFloat(threshold))
}

func (s *serviceImpl) threshold() float64 {
	if s.cfg.Pricing.ApprovalThreshold <= 0 {
		return approvalThresholdDefault
	}

	return s.cfg.Pricing.ApprovalThreshold
}

func (s *serviceImpl) window() time.Duration {
	minutes := s.cfg.Pricing.ApprovalWindowMinutes
	if minutes <= 0 {
		minutes = approvalWindowMinutesDefault
	}

	return time.Duration(minutes) * time.Minute
}

// Gate applies small manual changes at once and parks large ones as pending approvals.
func (s *serviceImpl) Gate(ctx context.Context, req dto.GateRequest) (res model.PriceApproval, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Gate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.NewPrice <= 0 {
		return res, failure.BadRequestFromString("new_price must be greater than 0") // nolint:wrapcheck
	}

	room, err := s.room(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if prior, found, err := s.priorDecision(ctx, req.EventID); err != nil || found {
		return s.resume(ctx, prior, err)
	}

	oldPrice, err := s.pricing.CurrentPrice(ctx, room.ID, req.Date)
	if err != nil {
		return res, fmt.Errorf("failed to read current price: %w", err)
	}

	change := ChangeMagnitude(oldPrice, req.NewPrice)
	now := timezone.Now()

	scope.SetAttributes(map[string]any{
		"approval.room_id": room.ID,
		"approval.change":  change,
	})

	if !RequiresApproval(change, s.threshold()) {
		// recorded before applying so a retried event finds the decision and its old price
		res = req.ToModel(oldPrice, change, model.StatusAutoApproved, now)

		if err = s.repo.Insert(ctx, res); err != nil {
			log.Error().Err(err).Str("room_id", room.ID).Msg("failed to record auto approval")

			return res, fmt.Errorf("failed to record auto approval: %w", err)
		}

		if _, err = s.pricing.ApplyPrice(ctx, room.ID, req.Date, req.NewPrice, oldPrice); err != nil {
			return res, fmt.Errorf("failed to apply price: %w", err)
		}

		log.Info().Str("room_id", room.ID).Float64("change", change).Float64("price", req.NewPrice).Msg("manual price auto approved")

		return res, nil
	}

	res = req.ToModel(oldPrice, change, model.StatusPending, now.Add(s.window()))

	if err = s.repo.Insert(ctx, res); err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to create approval")

		return res, fmt.Errorf("failed to create approval: %w", err)
	}

	// the approval already exists; a lost message must not retry the event and duplicate it
	if err := s.notifier.RequestApproval(ctx, s.notice(res, room.Name)); err != nil {
		log.Warn().Err(err).Str("approval_id", res.ID).Msg("approval request notification not delivered")
	}

	log.Info().Str("approval_id", res.ID).Str("room_id", room.ID).Float64("change", change).Msg("manual price awaiting approval")

	return res, nil
}

// priorDecision finds the approval an earlier attempt of the same event already recorded.
func (s *serviceImpl) priorDecision(ctx context.Context, eventID string) (model.PriceApproval, bool, error) {
	if eventID == constant.Empty {
		return model.PriceApproval{}, false, nil
	}

	prior, err := s.repo.Get(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldEventID, eventID)))
	if err != nil {
		log.Error().Err(err).Str("event_id", eventID).Msg("failed to look up prior approval")

		return prior, false, fmt.Errorf("failed to look up prior approval: %w", err)
	}

	return prior, prior.ID != constant.Empty, nil
}

// resume finishes a retried gate from its recorded decision. An auto approval is applied again
// with the old price captured the first time; a pending or resolved approval is left as is.
func (s *serviceImpl) resume(ctx context.Context, prior model.PriceApproval, err error) (model.PriceApproval, error) {
	if err != nil {
		return prior, err
	}

	if prior.Status == model.StatusAutoApproved {
		if _, err := s.pricing.ApplyPrice(ctx, prior.RoomID, prior.Date, prior.NewPrice, prior.OldPrice); err != nil {
			return prior, fmt.Errorf("failed to apply price: %w", err)
		}
	}

	log.Info().Str("approval_id", prior.ID).Str("status", prior.Status).Msg("manual price already gated")

	return prior, nil
}

func (s *serviceImpl) Respond(ctx context.Context, id string, approve bool, actor string) (res dto.ApprovalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Respond")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if actor == constant.Empty {
		actor = ResponderOperator
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("approval_id", id).Msg("failed to get approval")

		return res, fmt.Errorf("failed to get approval: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("approval not found") // nolint:wrapcheck
	}

	status := model.StatusRejected
	if approve {
		status = model.StatusApproved
	}

	approval, ok, err := s.repo.Resolve(ctx, id, status, actor, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("approval_id", id).Msg("failed to resolve approval")

		return res, fmt.Errorf("failed to resolve approval: %w", err)
	}

	if !ok {
		return res, failure.Conflict(fmt.Sprintf("approval %s is %s or expired", id, current.Status)) // nolint:wrapcheck
	}

	if approve {
		if _, err = s.pricing.ApplyPrice(ctx, approval.RoomID, approval.Date, approval.NewPrice, approval.OldPrice); err != nil {
			// a cancelled request must not leave the approval stranded as approved
			if reopenErr := s.repo.Reopen(context.WithoutCancel(ctx), id); reopenErr != nil {
				log.Error().Err(reopenErr).Str("approval_id", id).Msg("failed to reopen approval after apply failure")
			}

			return res, fmt.Errorf("failed to apply approved price: %w", err)
		}
	}

	if err := s.notifier.ApprovalResolved(ctx, s.notice(approval, s.roomName(ctx, approval.RoomID))); err != nil {
		log.Warn().Err(err).Str("approval_id", id).Msg("approval resolution notification not delivered")
	}

	log.Info().Str("approval_id", id).Str("status", status).Str("actor", actor).Msg("approval resolved")

	res.FromModel(approval)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetApprovalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListApprovals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if status != constant.Empty {
		filter = gDto.And(gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	approvals, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list approvals")

		return res, fmt.Errorf("failed to list approvals: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count approvals")

		return res, fmt.Errorf("failed to count approvals: %w", err)
	}

	res.FromModels(approvals, total, params.Limit)

	return res, nil
}

// SweepExpired rejects every pending approval whose window has passed.
func (s *serviceImpl) SweepExpired(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepExpired")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	expired, err := s.repo.ExpirePending(ctx, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to expire approvals")

		return 0, fmt.Errorf("failed to expire approvals: %w", err)
	}

	for _, approval := range expired {
		log.Info().Str("approval_id", approval.ID).Str("room_id", approval.RoomID).Msg("approval expired")

		if err := s.notifier.ApprovalResolved(ctx, s.notice(approval, s.roomName(ctx, approval.RoomID))); err != nil {
			log.Warn().Err(err).Str("approval_id", approval.ID).Msg("approval expiry notification not delivered")
		}
	}

	return len(expired), nil
}

func (s *serviceImpl) room(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFoundf("room %s not found", roomID) // nolint:wrapcheck
	}

	return room, nil
}

// roomName falls back to the id; a notification is still worth sending without the name.
func (s *serviceImpl) roomName(ctx context.Context, roomID string) string {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return roomID
	}

	return room.Name
}

func (s *serviceImpl) notice(approval model.PriceApproval, roomName string) notificationModel.ApprovalNotice {
	return notificationModel.ApprovalNotice{
		ApprovalID:       approval.ID,
		RoomID:           approval.RoomID,
		RoomName:         roomName,
		Date:             approval.Date.Format(constant.DateOnlyFormat),
		OldPrice:         approval.OldPrice,
		NewPrice:         approval.NewPrice,
		ChangePercentage: approval.ChangePercentage,
		ExpiresAt:        approval.ExpiresAt,
		Status:           approval.Status,
		RespondedBy:      approval.RespondedBy.String,
	}
}
