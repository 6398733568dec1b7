package router

import (
	"net/http"
	"time"

	handlers "github.com/NeuralTrust/TutorGate/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TutorGate/pkg/handlers/websocket"
	"github.com/NeuralTrust/TutorGate/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const (
	HealthPath       = "/health"
	PingPath         = "/__/ping"
	SummaryPath      = "/"
	VersionPath      = "/version"
	AskPath          = "/api/ask"
	StatusPath       = "/api/status/:session_id"
	AudioPath        = "/api/audio/:filename"
	VideoPath        = "/api/video/:filename"
	StatusStreamPath = "/ws/status/:session_id"
)

type tutorRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	wsHandlerTransport  wsHandlers.HandlerTransport
}

func NewTutorRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
) ServerRouter {
	return &tutorRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		wsHandlerTransport:  wsHandlerTransport,
	}
}

func (r *tutorRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	wsHandlerTransport, ok := r.wsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})

	for _, mw := range r.middlewareTransport.GetMiddlewares() {
		router.Use(mw)
	}

	router.Get(SummaryPath, handlerTransport.GetSummaryHandler.Handle)
	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	router.Post(AskPath, handlerTransport.AskHandler.Handle)
	router.Get(StatusPath, handlerTransport.GetStatusHandler.Handle)
	router.Get(AudioPath, handlerTransport.GetAudioHandler.Handle)
	router.Get(VideoPath, handlerTransport.GetVideoHandler.Handle)

	streamHandlers := []fiber.Handler{}
	if r.middlewareTransport.WebsocketMiddleware != nil {
		streamHandlers = append(streamHandlers, r.middlewareTransport.WebsocketMiddleware.Middleware())
	}
	streamHandlers = append(streamHandlers, websocket.New(
		wsHandlerTransport.StatusStreamHandler.Handle,
		websocket.Config{
			HandshakeTimeout: 15 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		},
	))
	router.Get(StatusStreamPath, streamHandlers...)

	return nil
}
