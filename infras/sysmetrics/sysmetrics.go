package sysmetrics

//go:generate go run go.uber.org/mock/mockgen -source=./sysmetrics.go -destination=./mocks/sysmetrics_mock.go -package=mocks

import (
	"context"
	"runtime"
	"runtime/metrics"
	"sync"

	"lodge/shared/constant"
)

const (
	metricCPUTotal = "/cpu/classes/total:cpu-seconds"
	metricCPUIdle  = "/cpu/classes/idle:cpu-seconds"

	bytesPerMB = 1024 * 1024
)

// Provider reports host resource usage of the running process.
type Provider interface {
	MemoryUsageMB(ctx context.Context) float64
	CPUUsagePercent(ctx context.Context) float64
}

type runtimeProvider struct {
	mu        sync.Mutex
	lastTotal float64
	lastIdle  float64
}

func New() Provider {
	return &runtimeProvider{}
}

// MemoryUsageMB returns the heap memory currently allocated by the process.
func (p *runtimeProvider) MemoryUsageMB(_ context.Context) float64 {
	var stats runtime.MemStats

	runtime.ReadMemStats(&stats)

	return float64(stats.HeapAlloc) / bytesPerMB
}

// CPUUsagePercent returns the share of available CPU time the Go runtime spent busy
// since the previous call. The first call measures since process start.
func (p *runtimeProvider) CPUUsagePercent(_ context.Context) float64 {
	samples := []metrics.Sample{
		{Name: metricCPUTotal},
		{Name: metricCPUIdle},
	}

	metrics.Read(samples)

	if samples[0].Value.Kind() != metrics.KindFloat64 || samples[1].Value.Kind() != metrics.KindFloat64 {
		return 0
	}

	total := samples[0].Value.Float64()
	idle := samples[1].Value.Float64()

	p.mu.Lock()
	defer p.mu.Unlock()

	deltaTotal := total - p.lastTotal
	deltaIdle := idle - p.lastIdle

	p.lastTotal = total
	p.lastIdle = idle

	if deltaTotal <= 0 {
		return 0
	}

	usage := (deltaTotal - deltaIdle) / deltaTotal * constant.Percent

	return max(0, min(constant.Percent, usage))
}
