package middleware

import (
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/NeuralTrust/TutorGate/pkg/domain/telemetry"
	infraWebsocket "github.com/NeuralTrust/TutorGate/pkg/infra/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	status int
}

type fakeWorker struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (w *fakeWorker) StartWorkers(int)              {}
func (w *fakeWorker) Shutdown()                     {}
func (w *fakeWorker) Process(*telemetry.StageEvent) {}

func (w *fakeWorker) RecordRequest(method, path string, statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.requests = append(w.requests, recordedRequest{method: method, path: path, status: statusCode})
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func TestPanicRecover(t *testing.T) {
	app := fiber.New()
	app.Use(NewPanicRecoverMiddleware(quietLogger()).Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, string(body))
}

func TestCORS_AllowAll(t *testing.T) {
	app := fiber.New()
	app.Use(NewCORSGlobalMiddleware([]string{"*"}, nil, false, nil, "600").Middleware())
	app.Post("/api/ask", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodPost, "/api/ask", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(fiber.MethodOptions, "/api/ask", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	preflight.Header.Set("Access-Control-Request-Method", "POST")
	resp, err = app.Test(preflight)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(NewCORSGlobalMiddleware([]string{"https://tutor.example.com"}, nil, true, nil, "").Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://tutor.example.com")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "https://tutor.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	worker := &fakeWorker{}
	app := fiber.New()
	app.Use(NewMetricsMiddleware(quietLogger(), worker).Middleware())
	app.Get("/api/status/:session_id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false})
	})

	req := httptest.NewRequest(fiber.MethodGet, "/api/status/abc12345", nil)
	req.Header.Set("User-Agent", "curl/8.4.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	require.Len(t, worker.requests, 1)
	assert.Equal(t, recordedRequest{method: "GET", path: "/api/status/:session_id", status: 404}, worker.requests[0])
}

func TestWebsocketMiddleware_RequiresUpgrade(t *testing.T) {
	sem := infraWebsocket.NewSemaphore(1)
	app := fiber.New()
	app.Get("/ws/status/:session_id", NewWebsocketMiddleware(quietLogger(), sem).Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ws/status/ab12cd34", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
	assert.Equal(t, 0, sem.GetCurrentConnections())
}

func TestWebsocketMiddleware_LimitsConnections(t *testing.T) {
	sem := infraWebsocket.NewSemaphore(1)
	require.True(t, sem.Acquire())

	app := fiber.New()
	app.Get("/ws/status/:session_id", NewWebsocketMiddleware(quietLogger(), sem).Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/ws/status/ab12cd34", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
