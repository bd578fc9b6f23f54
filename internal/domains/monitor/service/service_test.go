package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"lodge/config"
	"lodge/infras/otel/mocks"
	sysMocks "lodge/infras/sysmetrics/mocks"
	approvalMocks "lodge/internal/domains/approval/mocks"
	eventMocks "lodge/internal/domains/event/mocks"
	metricMocks "lodge/internal/domains/metric/mocks"
	metricModel "lodge/internal/domains/metric/model"
	monitorMocks "lodge/internal/domains/monitor/mocks"
	"lodge/internal/domains/monitor/model"
	"lodge/internal/domains/monitor/service"
	notificationMocks "lodge/internal/domains/notification/mocks"
	notificationModel "lodge/internal/domains/notification/model"
	roomMocks "lodge/internal/domains/room/mocks"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/stats"
	statsMocks "lodge/shared/stats/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryAlerts keeps alert rows so consecutive passes observe each other's writes.
type memoryAlerts struct {
	rows      []model.Alert
	inserts   int
	updates   int
	insertErr error
}

func (m *memoryAlerts) Insert(_ context.Context, alert model.Alert) error {
	if m.insertErr != nil {
		return m.insertErr
	}

	m.rows = append(m.rows, alert)
	m.inserts++

	return nil
}

func (m *memoryAlerts) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Alert, error) {
	return m.rows, nil
}

func (m *memoryAlerts) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	return len(m.rows), nil
}

func (m *memoryAlerts) Update(_ context.Context, req map[string]any, filter gDto.FilterGroup) error {
	id := filter.Filters[0].(gDto.Filter).Value

	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}

		m.updates++

		if v, ok := req[model.FieldCurrentValue].(float64); ok {
			m.rows[i].CurrentValue = v
		}

		if v, ok := req[model.FieldSeverity].(string); ok {
			m.rows[i].Severity = v
		}

		if v, ok := req[model.FieldTriggeredAt].(time.Time); ok {
			m.rows[i].TriggeredAt = v
		}

		if v, ok := req[model.FieldIsActive].(bool); ok {
			m.rows[i].IsActive = v
		}

		if v, ok := req[model.FieldResolvedAt].(time.Time); ok {
			m.rows[i].ResolvedAt = sql.NullTime{Time: v, Valid: true}
		}
	}

	return nil
}

func (m *memoryAlerts) Active(_ context.Context) ([]model.Alert, error) {
	var active []model.Alert

	for _, row := range m.rows {
		if row.IsActive {
			active = append(active, row)
		}
	}

	return active, nil
}

type memoryCooldowns map[string]time.Time

func (m memoryCooldowns) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.AlertCooldown, error) {
	var rows []model.AlertCooldown

	for name, at := range m {
		rows = append(rows, model.AlertCooldown{MetricName: name, LastTriggeredAt: at})
	}

	return rows, nil
}

func (m memoryCooldowns) Stamp(_ context.Context, metricName string, at time.Time) error {
	m[metricName] = at

	return nil
}

type monitorFixture struct {
	alerts    *memoryAlerts
	cooldowns memoryCooldowns
	rules     *monitorMocks.MockRule
	metrics   *metricMocks.MockMetric
	events    *eventMocks.MockEvent
	rooms     *roomMocks.MockRoom
	approvals *approvalMocks.MockApproval
	stats     *statsMocks.MockRecorder
	system    *sysMocks.MockProvider
	notifier  *notificationMocks.MockNotification
	svc       service.Monitor
}

func newMonitorFixture(t *testing.T) *monitorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Monitor.PerformanceWindowSeconds = 60
	cfg.Monitor.BusinessWindowMinutes = 60

	f := &monitorFixture{
		alerts:    &memoryAlerts{},
		cooldowns: memoryCooldowns{},
		rules:     monitorMocks.NewMockRule(ctrl),
		metrics:   metricMocks.NewMockMetric(ctrl),
		events:    eventMocks.NewMockEvent(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		approvals: approvalMocks.NewMockApproval(ctrl),
		stats:     statsMocks.NewMockRecorder(ctrl),
		system:    sysMocks.NewMockProvider(ctrl),
		notifier:  notificationMocks.NewMockNotification(ctrl),
	}

	f.svc = service.New(
		f.alerts, f.rules, f.cooldowns, f.metrics, f.events, f.rooms, f.approvals,
		f.stats, f.system, f.notifier, cfg, mocks.NewOtel(),
	)

	return f
}

var errorRateRule = model.AlertRule{
	ID:              "rule-1",
	MetricName:      model.MetricErrorRate,
	Threshold:       5,
	Operator:        model.OperatorGreater,
	Severity:        model.SeverityHigh,
	CooldownMinutes: 15,
	Enabled:         true,
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name         string
		severities   []string
		errorRate    float64
		cacheHitRate float64
		wantScore    float64
		wantStatus   string
	}{
		{
			name:         "no alerts",
			cacheHitRate: 100,
			wantScore:    100,
			wantStatus:   service.HealthHealthy,
		},
		{
			name:         "critical and high alerts",
			severities:   []string{model.SeverityCritical, model.SeverityHigh},
			cacheHitRate: 90,
			wantScore:    60,
			wantStatus:   service.HealthWarning,
		},
		{
			name:         "flat penalties",
			severities:   []string{model.SeverityLow},
			errorRate:    5.5,
			cacheHitRate: 60,
			wantScore:    60,
			wantStatus:   service.HealthWarning,
		},
		{
			name:         "boundaries do not penalise",
			errorRate:    5,
			cacheHitRate: 70,
			wantScore:    100,
			wantStatus:   service.HealthHealthy,
		},
		{
			name:         "medium alert stays healthy",
			severities:   []string{model.SeverityMedium, model.SeverityLow},
			cacheHitRate: 100,
			wantScore:    85,
			wantStatus:   service.HealthHealthy,
		},
		{
			name:         "floored at zero",
			severities:   []string{model.SeverityCritical, model.SeverityCritical, model.SeverityCritical, model.SeverityCritical, model.SeverityHigh},
			errorRate:    50,
			cacheHitRate: 10,
			wantScore:    0,
			wantStatus:   service.HealthCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := make([]model.Alert, len(tt.severities))
			for i, severity := range tt.severities {
				alerts[i] = model.Alert{Severity: severity, IsActive: true}
			}

			score := service.HealthScore(alerts, tt.errorRate, tt.cacheHitRate)

			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantStatus, service.HealthStatus(score))
		})
	}
}

func TestMonitorService_CheckAlerts_CooldownNotifiesOnce(t *testing.T) {
	f := newMonitorFixture(t)

	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule}, nil).Times(2)
	f.notifier.EXPECT().AlertTriggered(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notice notificationModel.AlertNotice) error {
			assert.Equal(t, model.MetricErrorRate, notice.MetricName)
			assert.Equal(t, 12.5, notice.CurrentValue)

			return nil
		}).Times(1)

	first, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricErrorRate: 12.5})
	require.NoError(t, err)

	second, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricErrorRate: 14})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Triggered)
	assert.Equal(t, 0, second.Triggered)
	assert.Equal(t, 1, second.Suppressed)

	active, _ := f.alerts.Active(context.Background())
	require.Len(t, active, 1)
	assert.Equal(t, 12.5, active[0].CurrentValue)
	assert.Contains(t, f.cooldowns, model.MetricErrorRate)
}

func TestMonitorService_CheckAlerts_ConcurrentOpenIsSuppressed(t *testing.T) {
	f := newMonitorFixture(t)
	f.alerts.insertErr = failure.Conflict("alert for error_rate is already active")

	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule}, nil)

	res, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricErrorRate: 12.5})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Triggered)
	assert.Equal(t, 1, res.Suppressed)
	assert.NotContains(t, f.cooldowns, model.MetricErrorRate)
}

func TestMonitorService_CheckAlerts_RefreshAfterCooldown(t *testing.T) {
	f := newMonitorFixture(t)

	opened := time.Now().Add(-20 * time.Minute)
	f.alerts.rows = []model.Alert{{ID: "alert-1", MetricName: model.MetricErrorRate, CurrentValue: 8, Severity: model.SeverityHigh, TriggeredAt: opened, IsActive: true}}
	f.cooldowns[model.MetricErrorRate] = opened

	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule}, nil)
	f.notifier.EXPECT().AlertTriggered(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricErrorRate: 9})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Triggered)
	assert.Zero(t, f.alerts.inserts)
	assert.Equal(t, 1, f.alerts.updates)

	require.Len(t, f.alerts.rows, 1)
	assert.Equal(t, 9.0, f.alerts.rows[0].CurrentValue)
	assert.True(t, f.alerts.rows[0].TriggeredAt.After(opened))
	assert.True(t, f.cooldowns[model.MetricErrorRate].After(opened))
}

func TestMonitorService_CheckAlerts_Resolves(t *testing.T) {
	f := newMonitorFixture(t)

	f.alerts.rows = []model.Alert{{ID: "alert-1", MetricName: model.MetricErrorRate, CurrentValue: 8, Severity: model.SeverityHigh, IsActive: true}}
	f.cooldowns[model.MetricErrorRate] = time.Now()

	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule}, nil)
	f.notifier.EXPECT().AlertResolved(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricErrorRate: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Resolved)
	assert.False(t, f.alerts.rows[0].IsActive)
	assert.True(t, f.alerts.rows[0].ResolvedAt.Valid)
}

func TestMonitorService_CheckAlerts_MostSevereRuleWins(t *testing.T) {
	f := newMonitorFixture(t)

	critical := errorRateRule
	critical.ID = "rule-2"
	critical.Threshold = 20
	critical.Severity = model.SeverityCritical

	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule, critical}, nil)
	f.notifier.EXPECT().AlertTriggered(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricErrorRate: 25})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Evaluated)
	require.Len(t, f.alerts.rows, 1)
	assert.Equal(t, model.SeverityCritical, f.alerts.rows[0].Severity)
	assert.Equal(t, 20.0, f.alerts.rows[0].Threshold)
}

func TestMonitorService_CheckAlerts_SkipsUnknownMetrics(t *testing.T) {
	f := newMonitorFixture(t)

	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule}, nil)

	res, err := f.svc.CheckAlerts(context.Background(), map[string]float64{model.MetricQueueSize: 500})
	require.NoError(t, err)

	assert.Zero(t, res.Evaluated)
	assert.Empty(t, f.alerts.rows)
}

func TestMonitorService_CollectPerformanceMetrics(t *testing.T) {
	f := newMonitorFixture(t)

	f.stats.EXPECT().Snapshot(gomock.Any(), 60*time.Second).Return(stats.Snapshot{
		Window:       60 * time.Second,
		Calculations: 120,
		Errors:       6,
		LatencyMsSum: 2400,
		CacheHits:    30,
		CacheMisses:  10,
	}, nil)
	f.events.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil)
	f.system.EXPECT().MemoryUsageMB(gomock.Any()).Return(128.0)
	f.system.EXPECT().CPUUsagePercent(gomock.Any()).Return(12.5)

	res, err := f.svc.CollectPerformanceMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.PerformanceMetrics{
		CalculationsPerSecond: 2,
		AvgCalculationTimeMs:  20,
		CacheHitRate:          75,
		ErrorRate:             5,
		QueueSize:             7,
		MemoryUsageMB:         128,
		CPUUsagePercent:       12.5,
	}, res)
}

func TestMonitorService_CollectBusinessMetrics(t *testing.T) {
	f := newMonitorFixture(t)

	f.rooms.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			if len(filter.Filters) == 0 {
				return 10, nil
			}

			return 6, nil
		}).Times(2)
	f.metrics.EXPECT().PriceChangeStats(gomock.Any(), gomock.Any()).Return(metricModel.PriceChangeStats{
		Updates:       12,
		AvgAbsChange:  8.5,
		RevenueImpact: 150000,
	}, nil)
	f.approvals.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			if len(filter.Filters) == 1 {
				return 4, nil
			}

			return 1, nil
		}).Times(2)

	res, err := f.svc.CollectBusinessMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.BusinessMetrics{
		TotalRooms:               10,
		AutoPricingRooms:         6,
		AvgPriceChangePercentage: 8.5,
		PriceUpdatesPerHour:      12,
		PendingApprovalRate:      25,
		RevenueImpact:            150000,
	}, res)
}

func TestMonitorService_RunCycle(t *testing.T) {
	f := newMonitorFixture(t)

	f.stats.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(stats.Snapshot{Window: time.Minute}, nil)
	f.events.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.system.EXPECT().MemoryUsageMB(gomock.Any()).Return(64.0)
	f.system.EXPECT().CPUUsagePercent(gomock.Any()).Return(1.0)
	f.rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil).Times(2)
	f.metrics.EXPECT().PriceChangeStats(gomock.Any(), gomock.Any()).Return(metricModel.PriceChangeStats{}, nil)
	f.approvals.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

	var recorded []metricModel.MetricSample

	f.metrics.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, samples []metricModel.MetricSample) error {
			recorded = append(recorded, samples...)

			return nil
		}).Times(2)
	f.rules.EXPECT().Enabled(gomock.Any()).Return([]model.AlertRule{errorRateRule}, nil)

	res, err := f.svc.RunCycle(context.Background())
	require.NoError(t, err)

	require.NotNil(t, res.Performance)
	require.NotNil(t, res.Business)
	assert.Equal(t, 1, res.Alerts.Evaluated)
	assert.Len(t, recorded, 13)

	assert.Equal(t, metricModel.TypePerformance, recorded[0].MetricType)
	assert.Equal(t, model.MetricAvgCalculationTime, recorded[0].MetricName)
	assert.Equal(t, metricModel.TypeBusiness, recorded[12].MetricType)
}

func TestMonitorService_GetSystemHealth(t *testing.T) {
	f := newMonitorFixture(t)

	f.alerts.rows = []model.Alert{
		{ID: "a", MetricName: model.MetricQueueSize, Severity: model.SeverityCritical, IsActive: true},
		{ID: "b", MetricName: model.MetricCPUUsage, Severity: model.SeverityLow, IsActive: false},
	}

	f.stats.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(stats.Snapshot{Window: time.Minute}, nil)

	res, err := f.svc.GetSystemHealth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 75.0, res.HealthScore)
	assert.Equal(t, service.HealthWarning, res.Status)
	assert.Equal(t, map[string]int{model.SeverityCritical: 1}, res.ActiveAlerts)
	assert.Equal(t, 100.0, res.CacheHitRate)
}
