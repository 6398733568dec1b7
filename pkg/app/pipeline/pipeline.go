package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/app/answer"
	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain"
	"github.com/NeuralTrust/TutorGate/pkg/domain/artifact"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/NeuralTrust/TutorGate/pkg/domain/speech"
	"github.com/NeuralTrust/TutorGate/pkg/domain/telemetry"
	"github.com/NeuralTrust/TutorGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

var (
	ErrEmptyQuestion = errors.New("question is required")
	errMissingOutput = errors.New("stage reported success but produced no file")
)

const (
	StatusProcessing = "processing"
	StatusQueued     = "queued"
	StatusDisabled   = "disabled"
)

// Capabilities are probed once at startup and never change afterwards.
type Capabilities struct {
	Answer bool `json:"llama"`
	Speech bool `json:"tts"`
	Render bool `json:"wav2lip"`
}

type AskResult struct {
	Session     *session.Session
	Elapsed     time.Duration
	AudioStatus string
	VideoStatus string
}

//go:generate mockery --name=Pipeline --dir=. --output=./mocks --filename=pipeline_mock.go --case=underscore --with-expecter
type Pipeline interface {
	Ask(ctx context.Context, question string) (*AskResult, error)
	Capabilities() Capabilities
	// Wait reports whether every background task finished before ctx was done.
	Wait(ctx context.Context) bool
	// Pending lists the background tasks still running.
	Pending() []string
	Shutdown()
}

type Normalizer interface {
	Normalize(ctx context.Context, path string) error
}

type Renderer interface {
	Render(ctx context.Context, audioPath, outPath string) error
}

type EventSink interface {
	Process(evt *telemetry.StageEvent)
}

type Config struct {
	SpeechMaxChars       int
	MaxConcurrentRenders int64
	RecordLatency        bool
}

type Deps struct {
	Logger       *logrus.Logger
	Repo         session.Repository
	Fetcher      answer.Fetcher
	Synthesizer  speech.Synthesizer
	Normalizer   Normalizer
	Renderer     Renderer
	Store        artifact.Store
	Events       EventSink
	Capabilities Capabilities
	Config       Config
}

type pipeline struct {
	logger      *logrus.Logger
	repo        session.Repository
	fetcher     answer.Fetcher
	synthesizer speech.Synthesizer
	normalizer  Normalizer
	renderer    Renderer
	store       artifact.Store
	events      EventSink
	caps        Capabilities
	cfg         Config

	tracker *TaskTracker
	cancel  context.CancelFunc
	renders *semaphore.Weighted
	now     func() time.Time
}

func New(deps Deps) Pipeline {
	cfg := deps.Config
	if cfg.SpeechMaxChars <= 0 {
		cfg.SpeechMaxChars = common.SpeechMaxChars
	}
	if cfg.MaxConcurrentRenders <= 0 {
		cfg.MaxConcurrentRenders = 1
	}
	caps := deps.Capabilities
	if deps.Synthesizer == nil {
		caps.Speech = false
	}
	if deps.Renderer == nil {
		caps.Render = false
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &pipeline{
		logger:      deps.Logger,
		repo:        deps.Repo,
		fetcher:     deps.Fetcher,
		synthesizer: deps.Synthesizer,
		normalizer:  deps.Normalizer,
		renderer:    deps.Renderer,
		store:       deps.Store,
		events:      deps.Events,
		caps:        caps,
		cfg:         cfg,
		tracker:     NewTaskTracker(ctx, deps.Logger),
		cancel:      cancel,
		renders:     semaphore.NewWeighted(cfg.MaxConcurrentRenders),
		now:         time.Now,
	}
}

func (p *pipeline) Capabilities() Capabilities {
	return p.caps
}

func (p *pipeline) Ask(ctx context.Context, question string) (*AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	start := p.now()
	text := p.fetcher.Fetch(ctx, question)
	elapsed := p.now().Sub(start)
	if p.cfg.RecordLatency {
		prometheus.AskLatency.Observe(float64(elapsed.Milliseconds()))
	}

	s, err := p.repo.Create(ctx, question, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	prometheus.Sessions.Set(float64(p.repo.Count(ctx)))

	result := &AskResult{
		Session:     s,
		Elapsed:     elapsed,
		AudioStatus: StatusDisabled,
		VideoStatus: StatusDisabled,
	}
	if p.caps.Speech {
		id := s.ID
		if p.tracker.Go(common.StageSpeech, id, func(ctx context.Context) { p.speak(ctx, id) }) {
			result.AudioStatus = StatusProcessing
			if p.caps.Render {
				result.VideoStatus = StatusQueued
			}
		}
	}

	p.logger.WithFields(logrus.Fields{
		"session_id":   s.ID,
		"elapsed_ms":   elapsed.Milliseconds(),
		"audio_status": result.AudioStatus,
		"video_status": result.VideoStatus,
	}).Info("question answered")

	return result, nil
}

func (p *pipeline) Wait(ctx context.Context) bool {
	return p.tracker.Wait(ctx)
}

func (p *pipeline) Pending() []string {
	return p.tracker.Pending()
}

func (p *pipeline) Shutdown() {
	p.cancel()
}

// speak runs speech synthesis, records the audio, normalizes it in place and
// hands the session to the renderer.
func (p *pipeline) speak(ctx context.Context, id string) {
	answerText, ok := p.answerFor(ctx, id, common.StageSpeech)
	if !ok {
		return
	}

	path := p.store.AudioPath(id)
	text := speech.PrepareText(answerText, p.cfg.SpeechMaxChars)

	start := p.now()
	err := p.synthesizer.Synthesize(ctx, text, path)
	if err == nil && !p.store.Exists(path) {
		err = errMissingOutput
	}
	if err != nil {
		p.report(id, common.StageSpeech, start, "", err)
		return
	}

	file := p.store.AudioName(id)
	if err := p.repo.UpdateAudio(ctx, id, file); err != nil {
		p.report(id, common.StageSpeech, start, "", fmt.Errorf("failed to record audio: %w", err))
		return
	}
	p.report(id, common.StageSpeech, start, file, nil)

	if p.normalizer != nil {
		start = p.now()
		err := p.normalizer.Normalize(ctx, path)
		p.report(id, common.StageNormalize, start, file, err)
	}

	if p.caps.Render {
		p.tracker.Go(common.StageRender, id, func(ctx context.Context) { p.render(ctx, id) })
	}
}

func (p *pipeline) render(ctx context.Context, id string) {
	s, err := p.repo.Get(ctx, id)
	if err != nil {
		p.skip(id, common.StageRender, "session no longer exists")
		return
	}
	if !s.AudioReady {
		p.skip(id, common.StageRender, "audio is not ready")
		return
	}

	if err := p.renders.Acquire(ctx, 1); err != nil {
		p.skip(id, common.StageRender, "shutting down")
		return
	}
	defer p.renders.Release(1)

	out := p.store.VideoPath(id)
	start := p.now()
	err = p.renderer.Render(ctx, p.store.AudioPath(id), out)
	if err == nil && !p.store.Exists(out) {
		err = errMissingOutput
	}
	if err != nil {
		p.report(id, common.StageRender, start, "", err)
		return
	}

	file := p.store.VideoName(id)
	if err := p.repo.UpdateVideo(ctx, id, file); err != nil {
		p.report(id, common.StageRender, start, "", fmt.Errorf("failed to record video: %w", err))
		return
	}
	p.report(id, common.StageRender, start, file, nil)
}

func (p *pipeline) answerFor(ctx context.Context, id, stage string) (string, bool) {
	s, err := p.repo.Get(ctx, id)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			p.report(id, stage, p.now(), "", err)
			return "", false
		}
		p.skip(id, stage, "session no longer exists")
		return "", false
	}
	return s.Answer, true
}

func (p *pipeline) report(id, stage string, start time.Time, file string, err error) {
	evt := &telemetry.StageEvent{
		SessionID:  id,
		Stage:      stage,
		Outcome:    telemetry.OutcomeSuccess,
		DurationMs: p.now().Sub(start).Milliseconds(),
		File:       file,
		Timestamp:  p.now(),
	}
	entry := p.logger.WithFields(logrus.Fields{
		"session_id":  id,
		"stage":       stage,
		"duration_ms": evt.DurationMs,
	})
	if err != nil {
		evt.Outcome = telemetry.OutcomeFailure
		evt.Error = err.Error()
		entry.WithError(err).Error("stage failed")
	} else {
		entry.WithField("file", file).Info("stage completed")
	}
	p.emit(evt)
}

func (p *pipeline) skip(id, stage, reason string) {
	p.logger.WithFields(logrus.Fields{
		"session_id": id,
		"stage":      stage,
		"reason":     reason,
	}).Debug("stage skipped")
	p.emit(&telemetry.StageEvent{
		SessionID: id,
		Stage:     stage,
		Outcome:   telemetry.OutcomeSkipped,
		Error:     reason,
		Timestamp: p.now(),
	})
}

func (p *pipeline) emit(evt *telemetry.StageEvent) {
	if p.events != nil {
		p.events.Process(evt)
	}
}
