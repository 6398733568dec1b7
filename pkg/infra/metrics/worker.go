package metrics

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/domain/telemetry"
	"github.com/NeuralTrust/TutorGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueSize = 1000
	exportTimeout    = 5 * time.Second
)

type Worker interface {
	StartWorkers(n int)
	Shutdown()
	// Process records a stage outcome in Prometheus and hands it to the exporters.
	Process(evt *telemetry.StageEvent)
	// RecordRequest counts one served HTTP request.
	RecordRequest(method, path string, statusCode int)
}

type worker struct {
	logger    *logrus.Logger
	exporters []telemetry.Exporter
	taskChan  chan func()
	mu        sync.RWMutex
	closed    bool
	wg        sync.WaitGroup
}

func NewWorker(logger *logrus.Logger, exporters []telemetry.Exporter, queueSize int) Worker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &worker{
		logger:    logger,
		exporters: exporters,
		taskChan:  make(chan func(), queueSize),
	}
}

// Shutdown stops intake, lets the workers drain queued tasks and closes the exporters.
func (m *worker) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.taskChan)
	m.mu.Unlock()

	m.logger.Info("shutting down metrics workers")
	m.wg.Wait()
	for _, exporter := range m.exporters {
		exporter.Close()
	}
	m.logger.Info("metrics workers stopped")
}

func (m *worker) Process(evt *telemetry.StageEvent) {
	if evt == nil {
		return
	}
	m.enqueueTask(func() {
		m.registryStageToPrometheus(evt)
	}, evt.SessionID)

	if len(m.exporters) == 0 {
		m.logger.WithFields(logrus.Fields{
			"session_id": evt.SessionID,
			"stage":      evt.Stage,
			"outcome":    evt.Outcome,
		}).Debug("stage event")
		return
	}
	m.enqueueTask(func() {
		m.registryStageToExporters(evt)
	}, evt.SessionID)
}

func (m *worker) RecordRequest(method, path string, statusCode int) {
	m.enqueueTask(func() {
		prometheus.RequestTotal.WithLabelValues(method, path, getStatusClass(statusCode)).Inc()
	}, "")
}

func (m *worker) registryStageToPrometheus(evt *telemetry.StageEvent) {
	prometheus.StageTotal.WithLabelValues(evt.Stage, string(evt.Outcome)).Inc()
	if prometheus.Config.EnableLatency && evt.Outcome != telemetry.OutcomeSkipped {
		prometheus.StageLatency.WithLabelValues(evt.Stage).Observe(float64(evt.DurationMs))
	}
}

func (m *worker) registryStageToExporters(evt *telemetry.StageEvent) {
	var failedExporters []string
	for _, exporter := range m.exporters {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		err := exporter.Handle(ctx, evt)
		cancel()
		if err != nil {
			m.logger.WithFields(logrus.Fields{
				"session_id": evt.SessionID,
				"exporter":   exporter.Name(),
				"event":      evt.Type(),
			}).WithError(err).Error("exporter failed")
			failedExporters = append(failedExporters, exporter.Name())
		}
	}
	if len(failedExporters) > 0 {
		m.logger.WithField("failedExporters", failedExporters).
			Warnf("%d exporters failed to handle stage event", len(failedExporters))
	}
}

func (m *worker) StartWorkers(n int) {
	if n <= 0 {
		n = 1
	}
	m.logger.WithField("workers", n).Info("starting metrics workers")
	for i := 0; i < n; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			for task := range m.taskChan {
				m.runTask(task)
			}
		}()
	}
}

func (m *worker) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("panic", fmt.Sprint(r)).Error("metrics task panicked")
		}
	}()
	task()
}

func (m *worker) enqueueTask(task func(), sessionID string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	select {
	case m.taskChan <- task:
	default:
		m.logger.WithField("session_id", sessionID).
			Warn("taskChan is full, dropping metrics task")
	}
}

func getStatusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return strconv.Itoa(code/100) + "xx"
}
