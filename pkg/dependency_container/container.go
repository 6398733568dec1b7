package dependency_container

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TutorGate/pkg/app/answer"
	"github.com/NeuralTrust/TutorGate/pkg/app/pipeline"
	"github.com/NeuralTrust/TutorGate/pkg/app/retention"
	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/config"
	domainAnswer "github.com/NeuralTrust/TutorGate/pkg/domain/answer"
	domainSession "github.com/NeuralTrust/TutorGate/pkg/domain/session"
	domainSpeech "github.com/NeuralTrust/TutorGate/pkg/domain/speech"
	domainTelemetry "github.com/NeuralTrust/TutorGate/pkg/domain/telemetry"
	handlers "github.com/NeuralTrust/TutorGate/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TutorGate/pkg/handlers/websocket"
	"github.com/NeuralTrust/TutorGate/pkg/infra/execx"
	"github.com/NeuralTrust/TutorGate/pkg/infra/httpx"
	"github.com/NeuralTrust/TutorGate/pkg/infra/media/ffmpeg"
	"github.com/NeuralTrust/TutorGate/pkg/infra/media/wav2lip"
	"github.com/NeuralTrust/TutorGate/pkg/infra/metrics"
	"github.com/NeuralTrust/TutorGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/TutorGate/pkg/infra/providers/ollama"
	"github.com/NeuralTrust/TutorGate/pkg/infra/repository"
	infraSpeech "github.com/NeuralTrust/TutorGate/pkg/infra/speech"
	"github.com/NeuralTrust/TutorGate/pkg/infra/speech/espeak"
	"github.com/NeuralTrust/TutorGate/pkg/infra/speech/polly"
	"github.com/NeuralTrust/TutorGate/pkg/infra/storage"
	infraTelemetry "github.com/NeuralTrust/TutorGate/pkg/infra/telemetry"
	"github.com/NeuralTrust/TutorGate/pkg/infra/telemetry/kafka"
	"github.com/NeuralTrust/TutorGate/pkg/infra/telemetry/redis"
	infraWebsocket "github.com/NeuralTrust/TutorGate/pkg/infra/websocket"
	"github.com/NeuralTrust/TutorGate/pkg/middleware"
	"github.com/NeuralTrust/TutorGate/pkg/server"
	"github.com/NeuralTrust/TutorGate/pkg/server/router"
	"github.com/NeuralTrust/TutorGate/pkg/version"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Server            server.Server
	Pipeline          pipeline.Pipeline
	Sweeper           *retention.Sweeper
	MetricsWorker     metrics.Worker
	SessionRepository domainSession.Repository
	Storage           *storage.Layout
	Capabilities      pipeline.Capabilities

	streamShutdown chan struct{}
}

// CloseStreams ends every open status stream with a shutdown notice.
func (c *Container) CloseStreams() {
	select {
	case <-c.streamShutdown:
	default:
		close(c.streamShutdown)
	}
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// Runner overrides the subprocess runner, mostly for tests.
	Runner execx.Runner
	// Generator overrides the completion backend, mostly for tests.
	Generator domainAnswer.Generator
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	prometheus.Initialize(prometheus.MetricsConfig{
		Enabled:       cfg.Metrics.Enabled,
		EnableLatency: cfg.Metrics.EnableLatency,
	})

	layout := storage.NewLayout(cfg.Storage)
	if err := layout.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage directories: %w", err)
	}

	sessionRepository := repository.NewSessionRepository()

	runner := di.Runner
	if runner == nil {
		runner = execx.NewRunner()
	}

	// answer
	generator := di.Generator
	if generator == nil {
		httpClient := httpx.NewFastHTTPClient(
			httpx.WithTimeout(cfg.Answer.Timeout),
			httpx.WithUserAgent("tutorgate/"+version.Version),
		)
		generator = ollama.NewClient(ollama.Config{
			BaseURL:     cfg.Answer.BaseURL,
			Model:       cfg.Answer.Model,
			Temperature: cfg.Answer.Temperature,
			NumPredict:  cfg.Answer.NumPredict,
			TopP:        cfg.Answer.TopP,
		}, httpClient)
	}
	var breaker httpx.CircuitBreaker
	if cfg.Answer.BreakerMaxFailures > 0 {
		breaker = httpx.NewCircuitBreaker("answer", cfg.Answer.BreakerTimeout, cfg.Answer.BreakerMaxFailures)
	}
	fetcher := answer.NewFetcher(
		logger,
		generator,
		breaker,
		answer.Options{
			Timeout:     cfg.Answer.Timeout,
			PingTimeout: common.AnswerPingTimeout,
			MinLength:   cfg.Answer.MinLength,
		},
	)

	// speech
	speechLocator := infraSpeech.NewEngineLocator(
		infraSpeech.WithEngine(espeak.NewEngine(runner)),
		infraSpeech.WithEngine(polly.NewEngine()),
	)
	var synthesizer domainSpeech.Synthesizer
	if cfg.Speech.Enabled {
		s, err := speechLocator.GetSynthesizer(cfg.Speech.Engine, cfg.Speech.Settings)
		if err != nil {
			logger.WithError(err).
				WithField("engines", speechLocator.Engines()).
				Warn("speech engine misconfigured, speech disabled")
		} else {
			synthesizer = s
		}
	}

	// media
	transcoder := ffmpeg.NewTranscoder(ffmpeg.Config{
		Binary:  cfg.Transcoder.Binary,
		Timeout: cfg.Transcoder.Timeout,
	}, runner)
	renderer := wav2lip.NewRenderer(wav2lip.Config{
		Python:     cfg.Renderer.Python,
		Dir:        cfg.Renderer.Dir,
		Script:     cfg.Renderer.Script,
		Checkpoint: cfg.Renderer.Checkpoint,
		Face:       cfg.Renderer.Face,
		Timeout:    cfg.Renderer.Timeout,
		Pads:       cfg.Renderer.Pads,
		NoSmooth:   cfg.Renderer.NoSmooth,
	}, runner)

	caps, normalizer, render := probeCapabilities(logger, cfg, fetcher, synthesizer, transcoder, renderer)
	if !caps.Speech {
		synthesizer = nil
	}

	// telemetry
	exporterLocator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
		infraTelemetry.WithExporter(redis.ExporterName, redis.NewRedisExporter()),
	)
	dtos := make([]domainTelemetry.ExporterDTO, 0, len(cfg.Events.Exporters))
	for _, e := range cfg.Events.Exporters {
		dtos = append(dtos, domainTelemetry.ExporterDTO{Name: e.Name, Settings: e.Settings})
	}
	exporters, err := exporterLocator.Build(dtos)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage exporters: %w", err)
	}
	metricsWorker := metrics.NewWorker(logger, exporters, cfg.Events.QueueSize)

	tutorPipeline := pipeline.New(pipeline.Deps{
		Logger:       logger,
		Repo:         sessionRepository,
		Fetcher:      fetcher,
		Synthesizer:  synthesizer,
		Normalizer:   normalizer,
		Renderer:     render,
		Store:        layout,
		Events:       metricsWorker,
		Capabilities: caps,
		Config: pipeline.Config{
			SpeechMaxChars:       cfg.Speech.MaxChars,
			MaxConcurrentRenders: cfg.Renderer.MaxConcurrent,
			RecordLatency:        cfg.Metrics.Enabled && cfg.Metrics.EnableLatency,
		},
	})

	sweeper := retention.NewSweeper(logger, sessionRepository, retention.Options{
		MaxAge:   cfg.Retention.MaxAge,
		Interval: cfg.Retention.SweepInterval,
	})

	streamShutdown := make(chan struct{})

	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			cfg.CORS.AllowOrigins,
			nil,
			false,
			[]string{"Content-Length", "Content-Range"},
			"12h",
		),
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger, metricsWorker),
		WebsocketMiddleware: middleware.NewWebsocketMiddleware(
			logger,
			infraWebsocket.NewSemaphore(cfg.WebSocket.MaxConnections),
		),
	}

	handlerTransport := &handlers.HandlerTransportDTO{
		AskHandler:        handlers.NewAskHandler(logger, tutorPipeline),
		GetStatusHandler:  handlers.NewGetStatusHandler(logger, sessionRepository),
		GetAudioHandler:   handlers.NewGetAudioHandler(logger, layout),
		GetVideoHandler:   handlers.NewGetVideoHandler(logger, layout),
		GetSummaryHandler: handlers.NewGetSummaryHandler(sessionRepository, tutorPipeline),
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		StatusStreamHandler: wsHandlers.NewStatusStreamHandler(
			logger,
			sessionRepository,
			cfg.WebSocket,
			caps,
			streamShutdown,
		),
	}

	tutorServer := server.NewTutorServer(server.TutorServerDI{
		Config: cfg,
		Logger: logger,
		Router: router.NewTutorRouter(middlewareTransport, handlerTransport, wsHandlerTransport),
	})

	return &Container{
		Server:            tutorServer,
		Pipeline:          tutorPipeline,
		Sweeper:           sweeper,
		MetricsWorker:     metricsWorker,
		SessionRepository: sessionRepository,
		Storage:           layout,
		Capabilities:      caps,
		streamShutdown:    streamShutdown,
	}, nil
}

type availabilityChecker interface {
	Available() error
}

// probeCapabilities runs every availability check once. A stage that fails
// its probe is switched off for the life of the process.
func probeCapabilities(
	logger *logrus.Logger,
	cfg *config.Config,
	fetcher answer.Fetcher,
	synthesizer domainSpeech.Synthesizer,
	transcoder *ffmpeg.Transcoder,
	renderer *wav2lip.Renderer,
) (pipeline.Capabilities, pipeline.Normalizer, pipeline.Renderer) {
	var caps pipeline.Capabilities

	ctx, cancel := context.WithTimeout(context.Background(), common.AnswerPingTimeout)
	defer cancel()

	if err := fetcher.Ping(ctx); err != nil {
		logger.WithError(err).Warn("answer backend unreachable, fallback answers will be used")
	} else {
		caps.Answer = true
	}

	if synthesizer != nil {
		if err := synthesizer.Available(ctx); err != nil {
			logger.WithError(err).WithField("engine", synthesizer.Name()).Warn("speech engine unavailable")
		} else {
			caps.Speech = true
		}
	}

	var normalizer pipeline.Normalizer
	if probe(logger, "transcoder", transcoder) {
		normalizer = transcoder
	}

	var render pipeline.Renderer
	if cfg.Renderer.Enabled && probe(logger, "renderer", renderer) {
		render = renderer
		caps.Render = true
	}

	logger.WithFields(logrus.Fields{
		"answer":    caps.Answer,
		"speech":    caps.Speech,
		"normalize": normalizer != nil,
		"render":    caps.Render,
	}).Info("capabilities probed")

	return caps, normalizer, render
}

func probe(logger *logrus.Logger, name string, c availabilityChecker) bool {
	if err := c.Available(); err != nil {
		logger.WithError(err).WithField("component", name).Warn("component unavailable")
		return false
	}
	return true
}
