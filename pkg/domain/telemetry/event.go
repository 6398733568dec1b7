package telemetry

import "time"

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeSkipped Outcome = "skipped"
)

// StageEvent records the outcome of one background stage for one session.
type StageEvent struct {
	SessionID  string    `json:"session_id"`
	Stage      string    `json:"stage"`
	Outcome    Outcome   `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	File       string    `json:"file,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Type names the event for consumers: audio_ready, video_ready or stage_failed.
func (e *StageEvent) Type() string {
	switch e.Outcome {
	case OutcomeSuccess:
		switch e.Stage {
		case "speech":
			return "audio_ready"
		case "render":
			return "video_ready"
		}
		return e.Stage + "_done"
	case OutcomeFailure:
		return "stage_failed"
	}
	return e.Stage + "_" + string(e.Outcome)
}
