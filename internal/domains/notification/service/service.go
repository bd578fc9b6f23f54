package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/rabbitmq"
	"lodge/internal/domains/notification/model"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Notification interface {
	RequestApproval(ctx context.Context, notice model.ApprovalNotice) error
	ApprovalResolved(ctx context.Context, notice model.ApprovalNotice) error
	AlertTriggered(ctx context.Context, notice model.AlertNotice) error
	AlertResolved(ctx context.Context, notice model.AlertNotice) error
}

type serviceImpl struct {
	client  rabbitmq.Client
	cfg     *config.Config
	otel    otel.Otel
	printer *message.Printer
}

func New(client rabbitmq.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		client:  client,
		cfg:     cfg,
		otel:    otel,
		printer: message.NewPrinter(language.Indonesian),
	}
}

func (s *serviceImpl) money(amount float64) string {
	return s.printer.Sprintf("Rp %.0f", amount)
}

func (s *serviceImpl) RequestApproval(ctx context.Context, notice model.ApprovalNotice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestApproval")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	text := strings.Join([]string{
		"*Price approval required*",
		fmt.Sprintf("Room: %s", notice.RoomName),
		fmt.Sprintf("Date: %s", notice.Date),
		fmt.Sprintf("Current price: %s", s.money(notice.OldPrice)),
		fmt.Sprintf("Requested price: %s (%.2f%% change)", s.money(notice.NewPrice), notice.ChangePercentage),
		fmt.Sprintf("Expires: %s", timezone.Format(notice.ExpiresAt, "02 Jan 2006 15:04")),
		fmt.Sprintf("Reply APPROVE %s or REJECT %s.", notice.ApprovalID, notice.ApprovalID),
	}, "\n")

	return s.publish(ctx, model.KindApprovalRequest, text, map[string]any{
		"approval_id": notice.ApprovalID,
		"room_id":     notice.RoomID,
		"date":        notice.Date,
		"old_price":   notice.OldPrice,
		"new_price":   notice.NewPrice,
	})
}

func (s *serviceImpl) ApprovalResolved(ctx context.Context, notice model.ApprovalNotice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApprovalResolved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	text := fmt.Sprintf("Price change for %s on %s was %s by %s: %s -> %s.",
		notice.RoomName, notice.Date, notice.Status, notice.RespondedBy,
		s.money(notice.OldPrice), s.money(notice.NewPrice))

	return s.publish(ctx, model.KindApprovalResolved, text, map[string]any{
		"approval_id": notice.ApprovalID,
		"status":      notice.Status,
	})
}

func (s *serviceImpl) AlertTriggered(ctx context.Context, notice model.AlertNotice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AlertTriggered")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	text := strings.Join([]string{
		fmt.Sprintf("*[%s] Pricing alert*", strings.ToUpper(notice.Severity)),
		notice.Message,
		fmt.Sprintf("%s = %.2f (rule %s %.2f)", notice.MetricName, notice.CurrentValue, notice.Operator, notice.Threshold),
	}, "\n")

	return s.publish(ctx, model.KindAlertTriggered, text, map[string]any{
		"metric_name":   notice.MetricName,
		"severity":      notice.Severity,
		"current_value": notice.CurrentValue,
		"threshold":     notice.Threshold,
	})
}

func (s *serviceImpl) AlertResolved(ctx context.Context, notice model.AlertNotice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AlertResolved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	text := fmt.Sprintf("Resolved: %s is back to %.2f (rule %s %.2f).",
		notice.MetricName, notice.CurrentValue, notice.Operator, notice.Threshold)

	return s.publish(ctx, model.KindAlertResolved, text, map[string]any{
		"metric_name":   notice.MetricName,
		"current_value": notice.CurrentValue,
	})
}

func (s *serviceImpl) publish(ctx context.Context, kind, text string, data map[string]any) error {
	msg := model.Message{
		ID:        uuid.NewString(),
		Kind:      kind,
		Channel:   s.cfg.External.Notification.Channel,
		Recipient: s.cfg.External.Notification.Recipient,
		Text:      text,
		Data:      data,
		CreatedAt: timezone.Now(),
	}

	log.Info().Str("kind", kind).Str("channel", msg.Channel).Str("text", text).Msg("dispatching notification")

	err := s.client.Publish(ctx, s.cfg.External.RabbitMQ.NotificationQueue, rabbitmq.Message{
		Key:   msg.ID,
		Value: msg,
	})
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to publish notification")

		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
