package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	AskHandler        Handler
	GetStatusHandler  Handler
	GetAudioHandler   Handler
	GetVideoHandler   Handler
	GetSummaryHandler Handler
	GetVersionHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
