package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	PanicRecoverMiddleware Middleware
	CORSMiddleware         Middleware
	MetricsMiddleware      Middleware
	WebsocketMiddleware    Middleware
}

// GetMiddlewares returns the global chain in order. The websocket middleware
// is route scoped and not part of it.
func (t *Transport) GetMiddlewares() []fiber.Handler {
	var handlers []fiber.Handler
	for _, m := range []Middleware{t.PanicRecoverMiddleware, t.CORSMiddleware, t.MetricsMiddleware} {
		if m != nil {
			handlers = append(handlers, m.Middleware())
		}
	}
	return handlers
}
