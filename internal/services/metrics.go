package rewards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("rewards")

// метрики
var (
	tokensAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rewards_tokens_awarded_total",
			Help: "Начислено токенов за завершенные курсы и проекты",
		},
	)

	cashoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rewards_cashouts_total",
			Help: "Запросы на вывод токенов по результату",
		},
		[]string{"result"},
	)

	gatewayEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rewards_gateway_events_total",
			Help: "События платежного шлюза по типу и результату обработки",
		},
		[]string{"type", "outcome"},
	)
)
