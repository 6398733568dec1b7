package http

import (
	"github.com/NeuralTrust/TutorGate/pkg/domain"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/NeuralTrust/TutorGate/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const errSessionNotFound = "Session not found"

type getStatusHandler struct {
	logger *logrus.Logger
	repo   session.Repository
}

func NewGetStatusHandler(logger *logrus.Logger, repo session.Repository) Handler {
	return &getStatusHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getStatusHandler) Handle(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	s, err := h.repo.Get(c.UserContext(), sessionID)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			h.logger.WithError(err).WithField("session_id", sessionID).Error("failed to get session")
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": errSessionNotFound})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewStatusOutput(s))
}
