package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/metrics"
)

// MetricsMiddleware registra código de estado y latencia de cada petición.
func MetricsMiddleware(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()
		collector.RecordHTTP(c.Response().StatusCode(), time.Since(inicio))
		return err
	}
}
