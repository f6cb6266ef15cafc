package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "gantry"
)

// Collector owns the Prometheus registry and all application metrics. It
// is created once at startup and threaded through the components that
// record events.
type Collector struct {
	registry *prometheus.Registry

	logRotations  prometheus.Counter
	logsPruned    prometheus.Counter
	jobsCreated   prometheus.Counter
	notifications *prometheus.CounterVec
	heartbeats    prometheus.Counter
}

// NewCollector creates a collector with its own registry. If registry is
// nil, a fresh one is used, which keeps tests isolated from each other.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		logRotations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_rotations_total",
			Help:      "Total number of log file rotations.",
		}),
		logsPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_files_pruned_total",
			Help:      "Total number of expired log files removed by retention.",
		}),
		jobsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_created_total",
			Help:      "Total number of jobs recorded in the job store.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of notification attempts by status.",
		}, []string{"status"}),
		heartbeats: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Total number of daemon heartbeat ticks.",
		}),
	}

	registry.MustRegister(
		c.logRotations,
		c.logsPruned,
		c.jobsCreated,
		c.notifications,
		c.heartbeats,
	)

	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRotation records a completed log rotation.
func (c *Collector) RecordRotation() {
	c.logRotations.Inc()
}

// RecordPruned records log files removed by the retention pass.
func (c *Collector) RecordPruned(count int) {
	c.logsPruned.Add(float64(count))
}

// RecordJobCreated records a new job row.
func (c *Collector) RecordJobCreated() {
	c.jobsCreated.Inc()
}

// RecordNotification records a notification attempt. status is "sent",
// "failed" or "skipped".
func (c *Collector) RecordNotification(status string) {
	c.notifications.WithLabelValues(status).Inc()
}

// RecordHeartbeat records one daemon loop tick.
func (c *Collector) RecordHeartbeat() {
	c.heartbeats.Inc()
}
