package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "deal_scan_cycles_total",
		Help: "Completed notification scan cycles.",
	})
	scanFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "deal_scan_failures_total",
		Help: "Scan cycles that failed before producing notifications.",
	})
	quotesResolvedTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "deal_quotes_resolved_total",
		Help: "Quotes that passed the thresholds during scan cycles.",
	})
	notificationsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "deal_notifications_total",
		Help: "Deal notifications handed to the sender.",
	})
)
