package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics builds the Prometheus HTTP middleware for the named service.
// Collectors live in the default registry, so the first call wins and later
// calls return the same instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
		promInstance.SetSkipPaths([]string{"/metrics", "/health", "/health/live", "/health/ready"})
	})
	return promInstance
}

// MetricsMiddleware returns the request-counting handler of prom.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
