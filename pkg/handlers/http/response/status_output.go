package response

import (
	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
)

type StatusOutput struct {
	Success    bool            `json:"success"`
	SessionID  string          `json:"session_id"`
	Question   string          `json:"question"`
	Answer     string          `json:"answer"`
	AudioReady bool            `json:"audio_ready"`
	VideoReady bool            `json:"video_ready"`
	Audio      *ArtifactOutput `json:"audio,omitempty"`
	Video      *ArtifactOutput `json:"video,omitempty"`
}

type ArtifactOutput struct {
	File string `json:"file"`
	URL  string `json:"url"`
}

// NewStatusOutput only links artifacts whose ready flag is set.
func NewStatusOutput(s *session.Session) *StatusOutput {
	out := &StatusOutput{
		Success:    true,
		SessionID:  s.ID,
		Question:   s.Question,
		Answer:     s.Answer,
		AudioReady: s.AudioReady,
		VideoReady: s.VideoReady,
	}
	if s.AudioReady && s.AudioFile != "" {
		out.Audio = &ArtifactOutput{File: s.AudioFile, URL: common.AudioRoutePrefix + s.AudioFile}
	}
	if s.VideoReady && s.VideoFile != "" {
		out.Video = &ArtifactOutput{File: s.VideoFile, URL: common.VideoRoutePrefix + s.VideoFile}
	}
	return out
}

// Complete reports whether nothing further can change for this session.
func (o *StatusOutput) Complete() bool {
	return o.AudioReady && o.VideoReady
}

func (o *StatusOutput) Equal(other *StatusOutput) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.SessionID == other.SessionID &&
		o.AudioReady == other.AudioReady &&
		o.VideoReady == other.VideoReady
}
