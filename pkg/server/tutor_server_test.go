package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/TutorGate/pkg/config"
	"github.com/NeuralTrust/TutorGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRouter struct{}

func (pingRouter) BuildRoutes(app *fiber.App) error {
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return nil
}

func TestBaseServer_WithRouters(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := NewBaseServer(config.Defaults(), logger).WithRouters(pingRouter{})

	resp, err := s.Router.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))
}

func TestBaseServer_MetricsEndpoint(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := config.Defaults()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.MetricsPort = 0
	prometheus.Initialize(prometheus.MetricsConfig{Enabled: true})
	prometheus.RequestTotal.WithLabelValues("GET", "/", "2xx").Inc()

	s := NewBaseServer(cfg, logger)
	s.setupMetricsEndpoint()
	require.NotNil(t, s.metricsApp)

	resp, err := s.metricsApp.Test(httptest.NewRequest(fiber.MethodGet, MetricsPath, nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "tutorgate_requests_total"))
}

func TestBaseServer_MetricsDisabled(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := config.Defaults()
	cfg.Metrics.Enabled = false

	s := NewBaseServer(cfg, logger)
	s.setupMetricsEndpoint()
	assert.Nil(t, s.metricsApp)
}
