package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/config"
	"github.com/NeuralTrust/TutorGate/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/TutorGate/pkg/infra/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, logWriter := infraLogger.NewLogger("tutor")
	if logWriter != nil {
		defer logWriter.Close()
	}

	if err := config.Load("config"); err != nil {
		logger.WithError(err).Warn("config file not loaded, using defaults")
	}
	cfg := config.GetConfig()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialize dependencies")
		return
	}

	container.MetricsWorker.StartWorkers(cfg.Events.Workers)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	container.Sweeper.Start(sweepCtx)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- container.Server.Run()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server...")
	case err := <-serverErr:
		if err != nil {
			logger.WithError(err).Error("server failed")
		}
	}

	shutdown(logger, container, stopSweeper)
	logger.Info("server gracefully stopped")
}

func shutdown(logger *logrus.Logger, container *dependency_container.Container, stopSweeper context.CancelFunc) {
	container.CloseStreams()
	if err := container.Server.Shutdown(common.ShutdownTaskWait); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}

	stopSweeper()
	<-container.Sweeper.Done()

	waitCtx, cancel := context.WithTimeout(context.Background(), common.ShutdownTaskWait)
	defer cancel()
	if !container.Pipeline.Wait(waitCtx) {
		logger.WithField("tasks", container.Pipeline.Pending()).
			Warn("background tasks still running, cancelling them")
	}
	container.Pipeline.Shutdown()
	container.MetricsWorker.Shutdown()
}
