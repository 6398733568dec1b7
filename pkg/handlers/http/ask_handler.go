package http

import (
	"errors"

	"github.com/NeuralTrust/TutorGate/pkg/app/pipeline"
	"github.com/NeuralTrust/TutorGate/pkg/handlers/http/request"
	"github.com/NeuralTrust/TutorGate/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const errQuestionRequired = "Question required"

type askHandler struct {
	logger   *logrus.Logger
	pipeline pipeline.Pipeline
}

func NewAskHandler(logger *logrus.Logger, pipeline pipeline.Pipeline) Handler {
	return &askHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

// Handle answers a question synchronously and queues audio and video generation.
func (h *askHandler) Handle(c *fiber.Ctx) error {
	var req request.AskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("invalid ask request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": errQuestionRequired})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": errQuestionRequired})
	}

	res, err := h.pipeline.Ask(c.UserContext(), req.Question)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyQuestion) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": errQuestionRequired})
		}
		h.logger.WithError(err).Error("failed to answer question")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewAskOutput(res))
}
