package router

import (
	"io"
	"net/http/httptest"
	"testing"

	handlers "github.com/NeuralTrust/TutorGate/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TutorGate/pkg/handlers/websocket"
	"github.com/NeuralTrust/TutorGate/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(string(h))
}

type noopStream struct{}

func (noopStream) Handle(*websocket.Conn) {}

type brokenTransport struct{}

func (brokenTransport) GetTransport() handlers.HandlerTransport { return brokenTransport{} }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	r := NewTutorRouter(
		&middleware.Transport{},
		&handlers.HandlerTransportDTO{
			AskHandler:        namedHandler("ask"),
			GetStatusHandler:  namedHandler("status"),
			GetAudioHandler:   namedHandler("audio"),
			GetVideoHandler:   namedHandler("video"),
			GetSummaryHandler: namedHandler("summary"),
			GetVersionHandler: namedHandler("version"),
		},
		&wsHandlers.HandlerTransportDTO{StatusStreamHandler: noopStream{}},
	)
	require.NoError(t, r.BuildRoutes(app))
	return app
}

func TestTutorRouter_Routes(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		target string
		want   string
	}{
		{fiber.MethodGet, "/", "summary"},
		{fiber.MethodGet, "/version", "version"},
		{fiber.MethodPost, "/api/ask", "ask"},
		{fiber.MethodGet, "/api/status/ab12cd34", "status"},
		{fiber.MethodGet, "/api/audio/audio_ab12cd34.wav", "audio"},
		{fiber.MethodGet, "/api/video/video_ab12cd34.mp4", "video"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, tc.target)
		assert.Equal(t, tc.want, string(body), tc.target)
	}
}

func TestTutorRouter_HealthAndPing(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, HealthPath, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, PingPath, nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"pong"}`, string(body))
}

func TestTutorRouter_StatusStreamRequiresUpgrade(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ws/status/ab12cd34", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestTutorRouter_InvalidTransport(t *testing.T) {
	r := NewTutorRouter(&middleware.Transport{}, brokenTransport{}, &wsHandlers.HandlerTransportDTO{})
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), ErrInvalidHandlerTransport)
}
