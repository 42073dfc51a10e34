package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name. The cache layer
// increments this from its client hook.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "playto_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

var (
	initMetricsOnce sync.Once
	promMiddleware  *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware for the given service
// name. The underlying collectors register globally, so the middleware is
// built once and reused; repeat calls (tests spin up many servers) get the
// same instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	initMetricsOnce.Do(func() {
		promMiddleware = fiberprometheus.New(serviceName)
	})
	return promMiddleware
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
