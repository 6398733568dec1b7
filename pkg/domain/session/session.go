package session

import (
	"errors"
	"time"
)

const EntityType = "session"

var ErrAudioNotReady = errors.New("audio is not ready for this session")

// Session tracks one question from its text answer through the optional
// audio and video artifacts. Question, Answer and CreatedAt never change after
// creation; each readiness flag flips false->true at most once and its file
// name is set in the same locked write.
type Session struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
	AudioReady bool      `json:"audio_ready"`
	AudioFile  string    `json:"audio_file,omitempty"`
	VideoReady bool      `json:"video_ready"`
	VideoFile  string    `json:"video_file,omitempty"`
}

func NewSession(id, question, answer string, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		Question:  question,
		Answer:    answer,
		CreatedAt: createdAt,
	}
}

// Snapshot returns a copy that shares no mutable state with s.
func (s *Session) Snapshot() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func (s *Session) ExpiredBefore(cutoff time.Time) bool {
	return s.CreatedAt.Before(cutoff)
}
