package monitoring

import "github.com/prometheus/client_golang/prometheus"

// PlatformStats exposes the dashboard counters as Prometheus gauges. A cron
// job refreshes them periodically so scrapes never hit the database.
type PlatformStats struct {
	users        *prometheus.GaugeVec
	swapRequests *prometheus.GaugeVec
	pendingFlags prometheus.Gauge
}

// NewPlatformStats creates the platform stat gauges
func NewPlatformStats() *PlatformStats {
	return &PlatformStats{
		users: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skillswap_users",
				Help: "Number of registered users by segment",
			},
			[]string{"segment"},
		),
		swapRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skillswap_swap_requests",
				Help: "Number of swap requests by status",
			},
			[]string{"status"},
		),
		pendingFlags: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "skillswap_flagged_skills_pending",
				Help: "Number of flagged skills awaiting moderation",
			},
		),
	}
}

// MustRegister registers the stat gauges with the provided registry
func (s *PlatformStats) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(s.users, s.swapRequests, s.pendingFlags)
}

// SetUserCounts updates the user segment gauges
func (s *PlatformStats) SetUserCounts(total, admins, banned int64) {
	s.users.WithLabelValues("total").Set(float64(total))
	s.users.WithLabelValues("admin").Set(float64(admins))
	s.users.WithLabelValues("banned").Set(float64(banned))
}

// SetSwapCounts updates the swap status gauges
func (s *PlatformStats) SetSwapCounts(total, pending, accepted, rejected, cancelled int64) {
	s.swapRequests.WithLabelValues("total").Set(float64(total))
	s.swapRequests.WithLabelValues("pending").Set(float64(pending))
	s.swapRequests.WithLabelValues("accepted").Set(float64(accepted))
	s.swapRequests.WithLabelValues("rejected").Set(float64(rejected))
	s.swapRequests.WithLabelValues("cancelled").Set(float64(cancelled))
}

// SetPendingFlags updates the moderation backlog gauge
func (s *PlatformStats) SetPendingFlags(count int64) {
	s.pendingFlags.Set(float64(count))
}
