package websocket

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/app/pipeline"
	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/config"
	"github.com/NeuralTrust/TutorGate/pkg/domain"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/NeuralTrust/TutorGate/pkg/handlers/http/response"
	infraWebsocket "github.com/NeuralTrust/TutorGate/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 10 * time.Second

type statusStreamHandler struct {
	logger       *logrus.Logger
	repo         session.Repository
	pollInterval time.Duration
	maxDuration  time.Duration
	caps         pipeline.Capabilities
	shutdown     <-chan struct{}
}

// NewStatusStreamHandler pushes session status over a websocket until every
// artifact caps allows is ready, the session disappears, the stream times out
// or shutdown is closed.
func NewStatusStreamHandler(
	logger *logrus.Logger,
	repo session.Repository,
	cfg config.WebSocketConfig,
	caps pipeline.Capabilities,
	shutdown <-chan struct{},
) Handler {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = common.StatusPollInterval
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = common.StatusStreamLimit
	}
	return &statusStreamHandler{
		logger:       logger,
		repo:         repo,
		pollInterval: cfg.PollInterval,
		maxDuration:  cfg.MaxDuration,
		caps:         caps,
		shutdown:     shutdown,
	}
}

func (h *statusStreamHandler) Handle(c *websocket.Conn) {
	if sem, ok := c.Locals(string(common.WsSemaphoreContextKey)).(*infraWebsocket.Semaphore); ok {
		defer sem.Release()
	}
	sessionID := c.Params("session_id")

	ctx, cancel := context.WithTimeout(context.Background(), h.maxDuration)
	defer cancel()

	// the client never sends anything useful; reading only detects hang-ups
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(msg *infraWebsocket.Message) error {
		if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return c.WriteJSON(msg)
	}

	reason := h.stream(ctx, sessionID, send)
	logger := h.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"reason":     reason,
	})
	if reason == "" {
		logger.Debug("status stream client went away")
		return
	}

	if err := send(infraWebsocket.ClosedMessage(reason)); err != nil {
		logger.WithError(err).Debug("failed to send close notice")
		return
	}
	_ = c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason),
		time.Now().Add(writeWait),
	)
	logger.Debug("status stream closed")
}

// stream polls the session and forwards each change. It returns the close
// reason, or "" when the client is gone.
func (h *statusStreamHandler) stream(
	ctx context.Context,
	sessionID string,
	send func(*infraWebsocket.Message) error,
) string {
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	var last *response.StatusOutput
	for {
		s, err := h.repo.Get(ctx, sessionID)
		if err != nil {
			if !domain.IsNotFoundError(err) {
				h.logger.WithError(err).WithField("session_id", sessionID).Error("failed to poll session")
			}
			return infraWebsocket.CloseReasonNotFound
		}

		out := response.NewStatusOutput(s)
		if !out.Equal(last) {
			if err := send(infraWebsocket.StatusMessage(out)); err != nil {
				return ""
			}
			last = out
		}
		if h.settled(out) {
			return infraWebsocket.CloseReasonComplete
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return infraWebsocket.CloseReasonTimeout
			}
			return ""
		case <-h.shutdown:
			return infraWebsocket.CloseReasonShutdown
		case <-ticker.C:
		}
	}
}

// settled reports whether out will not change any more. A disabled stage
// never produces its artifact, and rendering needs audio.
func (h *statusStreamHandler) settled(out *response.StatusOutput) bool {
	audioDone := out.AudioReady || !h.caps.Speech
	videoDone := out.VideoReady || !h.caps.Render || !h.caps.Speech
	return audioDone && videoDone
}
