package http

import (
	"github.com/NeuralTrust/TutorGate/pkg/app/pipeline"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/NeuralTrust/TutorGate/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

type getSummaryHandler struct {
	repo     session.Repository
	pipeline pipeline.Pipeline
}

func NewGetSummaryHandler(repo session.Repository, pipeline pipeline.Pipeline) Handler {
	return &getSummaryHandler{
		repo:     repo,
		pipeline: pipeline,
	}
}

func (h *getSummaryHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(response.SummaryOutput{
		Service:    response.ServiceName,
		Status:     response.StatusRunning,
		Sessions:   h.repo.Count(c.UserContext()),
		Components: h.pipeline.Capabilities(),
	})
}
