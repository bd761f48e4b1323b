package cards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	stampsIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cards_stamps_issued_total",
			Help: "Stamps issued to cards",
		},
	)

	pointsIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cards_points_issued_total",
			Help: "Points credited to cards",
		},
	)

	transactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cards_transactions_total",
			Help: "Ledger entries recorded, by type",
		},
		[]string{"type"},
	)

	cardsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cards_expired_total",
			Help: "Cards moved to expired status",
		},
	)

	updateConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cards_update_conflicts_total",
			Help: "Writes retried after a concurrent update",
		},
		[]string{"operation"},
	)

	operationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cards_operation_errors_total",
			Help: "Failed card operations",
		},
		[]string{"operation", "kind"},
	)
)
