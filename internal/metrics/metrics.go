package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bakery",
		Subsystem: "notification",
		Name:      "sends_total",
		Help:      "Receipt notifications by channel and outcome.",
	}, []string{"channel", "status"}) // status: sent / failed / skipped

	NotificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bakery",
		Subsystem: "notification",
		Name:      "send_duration_seconds",
		Help:      "Time spent in the mail transport per send.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"channel"})

	OrdersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bakery",
		Subsystem: "order",
		Name:      "placed_total",
		Help:      "Order submissions by outcome.",
	}, []string{"status"})

	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bakery",
		Subsystem: "checkout",
		Name:      "payment_links_total",
		Help:      "Payment link requests by outcome.",
	}, []string{"status"}) // created / cached / invalid / rejected / error
)

func ObserveNotification(channel, status string, d time.Duration) {
	NotificationsTotal.WithLabelValues(channel, status).Inc()
	if status != "skipped" {
		NotificationDuration.WithLabelValues(channel).Observe(d.Seconds())
	}
}
