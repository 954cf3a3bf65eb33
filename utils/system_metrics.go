package utils

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_percent",
		Help: "Host memory usage percentage",
	})
)

// StartSystemMetricsCollector samples host CPU and memory usage on the given
// interval and exposes them as gauges. Sampling errors are logged and the
// previous value is kept.
func StartSystemMetricsCollector(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if percentages, err := cpu.Percent(0, false); err != nil {
				log.Printf("system metrics: cpu sample failed: %v", err)
			} else if len(percentages) > 0 {
				SystemCPUUsage.Set(percentages[0])
			}

			if vm, err := mem.VirtualMemory(); err != nil {
				log.Printf("system metrics: memory sample failed: %v", err)
			} else {
				SystemMemoryUsage.Set(vm.UsedPercent)
			}
		}
	}()
}
