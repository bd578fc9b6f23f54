package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/sysmetrics"
	approvalModel "lodge/internal/domains/approval/model"
	approvalRepo "lodge/internal/domains/approval/repository"
	eventRepo "lodge/internal/domains/event/repository"
	metricModel "lodge/internal/domains/metric/model"
	metricDto "lodge/internal/domains/metric/model/dto"
	metricRepo "lodge/internal/domains/metric/repository"
	"lodge/internal/domains/monitor/model"
	"lodge/internal/domains/monitor/model/dto"
	"lodge/internal/domains/monitor/repository"
	notificationModel "lodge/internal/domains/notification/model"
	notificationService "lodge/internal/domains/notification/service"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/stats"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	performanceWindowDefault = 60 * time.Second
	businessWindowDefault    = time.Hour
)

var errAlertOpened = errors.New("alert already opened")

type Monitor interface {
	CollectPerformanceMetrics(ctx context.Context) (model.PerformanceMetrics, error)
	CollectBusinessMetrics(ctx context.Context) (model.BusinessMetrics, error)
	CheckAlerts(ctx context.Context, values map[string]float64) (dto.AlertCheckResult, error)
	GetSystemHealth(ctx context.Context) (dto.HealthResponse, error)
	RunCycle(ctx context.Context) (dto.CycleResult, error)
	ListAlerts(ctx context.Context, params gDto.QueryParams, activeOnly bool) (dto.GetAlertsResponse, error)
	ListMetrics(ctx context.Context, params gDto.QueryParams, metricType, metricName string) (metricDto.GetMetricsResponse, error)
}

type serviceImpl struct {
	alertRepo    repository.Alert
	ruleRepo     repository.Rule
	cooldownRepo repository.Cooldown
	metricRepo   metricRepo.Metric
	eventRepo    eventRepo.Event
	roomRepo     roomRepo.Room
	approvalRepo approvalRepo.Approval
	stats        stats.Recorder
	system       sysmetrics.Provider
	notifier     notificationService.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	alertRepo repository.Alert,
	ruleRepo repository.Rule,
	cooldownRepo repository.Cooldown,
	metricRepo metricRepo.Metric,
	eventRepo eventRepo.Event,
	roomRepo roomRepo.Room,
	approvalRepo approvalRepo.Approval,
	stats stats.Recorder,
	system sysmetrics.Provider,
	notifier notificationService.Notification,
	cfg *config.Config,
	otel otel.Otel,
) Monitor {
	return &serviceImpl{
		alertRepo:    alertRepo,
		ruleRepo:     ruleRepo,
		cooldownRepo: cooldownRepo,
		metricRepo:   metricRepo,
		eventRepo:    eventRepo,
		roomRepo:     roomRepo,
		approvalRepo: approvalRepo,
		stats:        stats,
		system:       system,
		notifier:     notifier,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) performanceWindow() time.Duration {
	if s.cfg.Monitor.PerformanceWindowSeconds <= 0 {
		return performanceWindowDefault
	}

	return time.Duration(s.cfg.Monitor.PerformanceWindowSeconds) * time.Second
}

func (s *serviceImpl) businessWindow() time.Duration {
	if s.cfg.Monitor.BusinessWindowMinutes <= 0 {
		return businessWindowDefault
	}

	return time.Duration(s.cfg.Monitor.BusinessWindowMinutes) * time.Minute
}

func (s *serviceImpl) CollectPerformanceMetrics(ctx context.Context) (res model.PerformanceMetrics, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CollectPerformanceMetrics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	snapshot, err := s.stats.Snapshot(ctx, s.performanceWindow())
	if err != nil {
		log.Error().Err(err).Msg("failed to read calculation stats")

		return res, fmt.Errorf("failed to read calculation stats: %w", err)
	}

	queued, err := s.eventRepo.Count(ctx, eventRepo.OutstandingFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count queued events")

		return res, fmt.Errorf("failed to count queued events: %w", err)
	}

	res = model.PerformanceMetrics{
		CalculationsPerSecond: snapshot.CalculationsPerSecond(),
		AvgCalculationTimeMs:  snapshot.AvgCalculationMs(),
		CacheHitRate:          snapshot.CacheHitRate(),
		ErrorRate:             snapshot.ErrorRate(),
		QueueSize:             float64(queued),
		MemoryUsageMB:         s.system.MemoryUsageMB(ctx),
		CPUUsagePercent:       s.system.CPUUsagePercent(ctx),
	}

	return res, nil
}

func (s *serviceImpl) CollectBusinessMetrics(ctx context.Context) (res model.BusinessMetrics, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CollectBusinessMetrics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window := s.businessWindow()
	since := timezone.Now().Add(-window)

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	autoRooms, err := s.roomRepo.Count(ctx, roomRepo.AutoPricingFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count auto pricing rooms")

		return res, fmt.Errorf("failed to count auto pricing rooms: %w", err)
	}

	changes, err := s.metricRepo.PriceChangeStats(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate price changes")

		return res, fmt.Errorf("failed to aggregate price changes: %w", err)
	}

	pendingRate, err := s.pendingApprovalRate(ctx, since)
	if err != nil {
		return res, err
	}

	res = model.BusinessMetrics{
		TotalRooms:               float64(totalRooms),
		AutoPricingRooms:         float64(autoRooms),
		AvgPriceChangePercentage: changes.AvgAbsChange,
		PriceUpdatesPerHour:      float64(changes.Updates) / window.Hours(),
		PendingApprovalRate:      pendingRate,
		RevenueImpact:            changes.RevenueImpact,
	}

	return res, nil
}

// pendingApprovalRate is the share of approvals created since the given time that still wait for a response.
func (s *serviceImpl) pendingApprovalRate(ctx context.Context, since time.Time) (float64, error) {
	created := gDto.GreaterEq(approvalModel.TableName, approvalModel.FieldCreatedAt, "created_since", since)

	total, err := s.approvalRepo.Count(ctx, gDto.And(created))
	if err != nil {
		log.Error().Err(err).Msg("failed to count approvals")

		return 0, fmt.Errorf("failed to count approvals: %w", err)
	}

	if total == 0 {
		return 0, nil
	}

	pending, err := s.approvalRepo.Count(ctx, gDto.And(
		created,
		gDto.Eq(approvalModel.TableName, approvalModel.FieldStatus, approvalModel.StatusPending),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending approvals")

		return 0, fmt.Errorf("failed to count pending approvals: %w", err)
	}

	return float64(pending) / float64(total) * constant.Percent, nil
}

// record appends one sample per metric, ordered by name.
func (s *serviceImpl) record(ctx context.Context, metricType string, values map[string]float64) error {
	names := slices.Sorted(maps.Keys(values))
	samples := make([]metricModel.MetricSample, len(names))

	for i, name := range names {
		samples[i] = metricDto.NewSample(metricType, name, values[name], constant.Empty, nil)
	}

	if err := s.metricRepo.InsertBulk(ctx, samples); err != nil {
		log.Error().Err(err).Str("metric_type", metricType).Msg("failed to record metric samples")

		return fmt.Errorf("failed to record %s metrics: %w", metricType, err)
	}

	return nil
}

// CheckAlerts evaluates every enabled rule against values. Alert and cooldown state is read from storage on each pass.
// When several rules watch one metric, the most severe breached rule owns the metric's single active alert.
func (s *serviceImpl) CheckAlerts(ctx context.Context, values map[string]float64) (res dto.AlertCheckResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAlerts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rules, err := s.ruleRepo.Enabled(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load alert rules")

		return res, fmt.Errorf("failed to load alert rules: %w", err)
	}

	alerts, err := s.alertRepo.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load active alerts")

		return res, fmt.Errorf("failed to load active alerts: %w", err)
	}

	cooldowns, err := s.cooldownRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load alert cooldowns")

		return res, fmt.Errorf("failed to load alert cooldowns: %w", err)
	}

	active := make(map[string]model.Alert, len(alerts))
	for _, alert := range alerts {
		active[alert.MetricName] = alert
	}

	lastTriggered := make(map[string]time.Time, len(cooldowns))
	for _, cooldown := range cooldowns {
		lastTriggered[cooldown.MetricName] = cooldown.LastTriggeredAt
	}

	byMetric := map[string][]model.AlertRule{}
	for _, rule := range rules {
		byMetric[rule.MetricName] = append(byMetric[rule.MetricName], rule)
	}

	var errs []error

	for _, metric := range slices.Sorted(maps.Keys(byMetric)) {
		value, ok := values[metric]
		if !ok {
			continue
		}

		res.Evaluated++

		alert, isActive := active[metric]
		breached, found := worstBreach(byMetric[metric], value)

		switch {
		case found:
			last, seen := lastTriggered[metric]
			if seen && timezone.Now().Sub(last) < breached.Cooldown() {
				res.Suppressed++

				continue
			}

			err := s.trigger(ctx, breached, value, alert, isActive)
			if errors.Is(err, errAlertOpened) {
				res.Suppressed++

				continue
			}

			if err != nil {
				errs = append(errs, err)

				continue
			}

			res.Triggered++
		case isActive:
			if err := s.resolve(ctx, alert, value, byMetric[metric][0]); err != nil {
				errs = append(errs, err)

				continue
			}

			res.Resolved++
		}
	}

	log.Info().
		Int("evaluated", res.Evaluated).
		Int("triggered", res.Triggered).
		Int("suppressed", res.Suppressed).
		Int("resolved", res.Resolved).
		Msg("alert rules evaluated")

	return res, errors.Join(errs...)
}

func worstBreach(rules []model.AlertRule, value float64) (model.AlertRule, bool) {
	var (
		worst model.AlertRule
		found bool
	)

	for _, rule := range rules {
		if !rule.Breached(value) {
			continue
		}

		if !found || model.SeverityRank(rule.Severity) > model.SeverityRank(worst.Severity) {
			worst = rule
			found = true
		}
	}

	return worst, found
}

// trigger opens the metric's alert, or refreshes the one already active, then stamps the cooldown and notifies.
func (s *serviceImpl) trigger(ctx context.Context, rule model.AlertRule, value float64, current model.Alert, isActive bool) error {
	message := fmt.Sprintf("%s is %.2f, breaching %s %.2f", rule.MetricName, value, rule.Operator, rule.Threshold)
	now := timezone.Now()

	if isActive {
		err := s.alertRepo.Update(ctx, map[string]any{
			model.FieldCurrentValue: value,
			model.FieldThreshold:    rule.Threshold,
			model.FieldSeverity:     rule.Severity,
			model.FieldMessage:      message,
			model.FieldTriggeredAt:  now,
		}, shared.FilterByID(current.ID, model.FieldID, model.AlertTableName))
		if err != nil {
			log.Error().Err(err).Str("metric", rule.MetricName).Msg("failed to refresh alert")

			return fmt.Errorf("failed to refresh alert for %s: %w", rule.MetricName, err)
		}
	} else if err := s.alertRepo.Insert(ctx, dto.NewAlert(rule, value, message)); err != nil {
		if failure.GetCode(err) == http.StatusConflict {
			log.Info().Str("metric", rule.MetricName).Msg("alert already opened by a concurrent monitor pass")

			return errAlertOpened
		}

		log.Error().Err(err).Str("metric", rule.MetricName).Msg("failed to open alert")

		return fmt.Errorf("failed to open alert for %s: %w", rule.MetricName, err)
	}

	if err := s.cooldownRepo.Stamp(ctx, rule.MetricName, now); err != nil {
		return fmt.Errorf("failed to stamp cooldown for %s: %w", rule.MetricName, err)
	}

	log.Warn().Str("metric", rule.MetricName).Str("severity", rule.Severity).Float64("value", value).Msg("alert triggered")

	err := s.notifier.AlertTriggered(ctx, notificationModel.AlertNotice{
		MetricName:   rule.MetricName,
		Severity:     rule.Severity,
		Message:      message,
		CurrentValue: value,
		Threshold:    rule.Threshold,
		Operator:     rule.Operator,
	})
	if err != nil {
		log.Warn().Err(err).Str("metric", rule.MetricName).Msg("alert notification not delivered")
	}

	return nil
}

func (s *serviceImpl) resolve(ctx context.Context, alert model.Alert, value float64, rule model.AlertRule) error {
	err := s.alertRepo.Update(ctx, map[string]any{
		model.FieldIsActive:     false,
		model.FieldResolvedAt:   timezone.Now(),
		model.FieldCurrentValue: value,
	}, shared.FilterByID(alert.ID, model.FieldID, model.AlertTableName))
	if err != nil {
		log.Error().Err(err).Str("metric", alert.MetricName).Msg("failed to resolve alert")

		return fmt.Errorf("failed to resolve alert for %s: %w", alert.MetricName, err)
	}

	log.Info().Str("metric", alert.MetricName).Float64("value", value).Msg("alert resolved")

	err = s.notifier.AlertResolved(ctx, notificationModel.AlertNotice{
		MetricName:   alert.MetricName,
		Severity:     alert.Severity,
		Message:      alert.Message,
		CurrentValue: value,
		Threshold:    rule.Threshold,
		Operator:     rule.Operator,
	})
	if err != nil {
		log.Warn().Err(err).Str("metric", alert.MetricName).Msg("alert resolution notification not delivered")
	}

	return nil
}

func (s *serviceImpl) GetSystemHealth(ctx context.Context) (res dto.HealthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSystemHealth")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	alerts, err := s.alertRepo.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load active alerts")

		return res, fmt.Errorf("failed to load active alerts: %w", err)
	}

	snapshot, err := s.stats.Snapshot(ctx, s.performanceWindow())
	if err != nil {
		log.Error().Err(err).Msg("failed to read calculation stats")

		return res, fmt.Errorf("failed to read calculation stats: %w", err)
	}

	res.ActiveAlerts = map[string]int{}
	for _, alert := range alerts {
		res.ActiveAlerts[alert.Severity]++
	}

	res.ErrorRate = snapshot.ErrorRate()
	res.CacheHitRate = snapshot.CacheHitRate()
	res.HealthScore = HealthScore(alerts, res.ErrorRate, res.CacheHitRate)
	res.Status = HealthStatus(res.HealthScore)
	res.CheckedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	return res, nil
}

// RunCycle collects both metric families, records them and evaluates alerts on whatever was collected.
func (s *serviceImpl) RunCycle(ctx context.Context) (res dto.CycleResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunCycle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var errs []error

	values := map[string]float64{}

	if performance, err := s.CollectPerformanceMetrics(ctx); err != nil {
		errs = append(errs, err)
	} else {
		res.Performance = &performance

		if err := s.record(ctx, metricModel.TypePerformance, performance.Values()); err != nil {
			errs = append(errs, err)
		}

		maps.Copy(values, performance.Values())
	}

	if business, err := s.CollectBusinessMetrics(ctx); err != nil {
		errs = append(errs, err)
	} else {
		res.Business = &business

		if err := s.record(ctx, metricModel.TypeBusiness, business.Values()); err != nil {
			errs = append(errs, err)
		}

		maps.Copy(values, business.Values())
	}

	if len(values) > 0 {
		alerts, err := s.CheckAlerts(ctx, values)
		if err != nil {
			errs = append(errs, err)
		}

		res.Alerts = alerts
	}

	return res, errors.Join(errs...)
}

func (s *serviceImpl) ListAlerts(ctx context.Context, params gDto.QueryParams, activeOnly bool) (res dto.GetAlertsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAlerts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if activeOnly {
		filter = repository.ActiveFilter()
	}

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldTriggeredAt
		params.SortDir = gDto.SortDirDesc
	}

	alerts, err := s.alertRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list alerts")

		return res, fmt.Errorf("failed to list alerts: %w", err)
	}

	total, err := s.alertRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count alerts")

		return res, fmt.Errorf("failed to count alerts: %w", err)
	}

	res.FromModels(alerts, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) ListMetrics(ctx context.Context, params gDto.QueryParams, metricType, metricName string) (res metricDto.GetMetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMetrics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And()

	if metricType != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Eq(metricModel.TableName, metricModel.FieldMetricType, metricType))
	}

	if metricName != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Eq(metricModel.TableName, metricModel.FieldMetricName, metricName))
	}

	if params.SortBy == constant.Empty {
		params.SortBy = metricModel.FieldRecordedAt
		params.SortDir = gDto.SortDirDesc
	}

	samples, err := s.metricRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list metrics")

		return res, fmt.Errorf("failed to list metrics: %w", err)
	}

	total, err := s.metricRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count metrics")

		return res, fmt.Errorf("failed to count metrics: %w", err)
	}

	res.FromModels(samples, total, params.Limit)

	return res, nil
}
