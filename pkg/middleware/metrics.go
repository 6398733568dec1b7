package middleware

import (
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/infra/metrics"
	"github.com/NeuralTrust/TutorGate/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
	worker metrics.Worker
}

func NewMetricsMiddleware(logger *logrus.Logger, worker metrics.Worker) Middleware {
	return &metricsMiddleware{
		logger: logger,
		worker: worker,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		err := c.Next()

		statusCode := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				statusCode = fiberErr.Code
			}
		}

		// route template keeps file names and session ids out of the label set
		path := c.Route().Path
		m.worker.RecordRequest(c.Method(), path, statusCode)

		if m.logger.IsLevelEnabled(logrus.DebugLevel) {
			client := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage))
			m.logger.WithFields(logrus.Fields{
				"method":     c.Method(),
				"path":       c.Path(),
				"status":     statusCode,
				"latency_ms": time.Since(startTime).Milliseconds(),
				"device":     client.Device,
				"os":         client.OS,
				"browser":    client.Browser,
				"locale":     client.Locale,
			}).Debug("request served")
		}
		return err
	}
}
