package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/NeuralTrust/TutorGate/pkg/domain/artifact"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getArtifactHandler struct {
	logger   *logrus.Logger
	store    artifact.Store
	kind     artifact.Kind
	notFound string
}

func NewGetAudioHandler(logger *logrus.Logger, store artifact.Store) Handler {
	return &getArtifactHandler{logger: logger, store: store, kind: artifact.KindAudio, notFound: "Audio not found"}
}

func NewGetVideoHandler(logger *logrus.Logger, store artifact.Store) Handler {
	return &getArtifactHandler{logger: logger, store: store, kind: artifact.KindVideo, notFound: "Video not found"}
}

// Handle streams a generated file. The file is opened per request so a
// normalized audio file replaced in place is always served fresh.
func (h *getArtifactHandler) Handle(c *fiber.Ctx) error {
	name := c.Params("filename")

	path, err := h.store.Resolve(h.kind, name)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"kind":     h.kind,
			"filename": name,
		}).Warn("rejected artifact name")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": h.notFound})
	}
	if !h.store.Exists(path) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": h.notFound})
	}

	f, err := os.Open(path)
	if err != nil {
		h.logger.WithError(err).WithField("path", path).Error("failed to open artifact")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": h.notFound})
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		h.logger.WithError(err).WithField("path", path).Error("failed to stat artifact")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": h.notFound})
	}

	c.Type(strings.TrimPrefix(filepath.Ext(path), "."))
	// fasthttp closes the file once the body is written
	return c.Status(fiber.StatusOK).SendStream(f, int(info.Size()))
}
