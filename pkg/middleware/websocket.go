package middleware

import (
	"github.com/NeuralTrust/TutorGate/pkg/common"
	infra "github.com/NeuralTrust/TutorGate/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

func NewWebsocketMiddleware(logger *logrus.Logger, semaphore *infra.Semaphore) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: semaphore,
	}
}

// Middleware admits an upgrade only while a connection slot is free. The
// handler releases the slot when the stream ends.
func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "websocket upgrade required"})
		}
		if !m.semaphore.Acquire() {
			m.logger.WithField("max_connections", m.semaphore.Capacity()).
				Warn("maximum websocket connections reached, rejecting connection")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many status streams"})
		}
		// plain string key: contrib/websocket only copies string-keyed locals
		c.Locals(string(common.WsSemaphoreContextKey), m.semaphore)
		return c.Next()
	}
}
