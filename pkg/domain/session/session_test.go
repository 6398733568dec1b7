package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_SnapshotIsIndependent(t *testing.T) {
	s := NewSession("abcd1234", "q", "a", time.Now())
	cp := s.Snapshot()
	cp.AudioReady = true
	cp.AudioFile = "audio_abcd1234.wav"

	assert.False(t, s.AudioReady)
	assert.Empty(t, s.AudioFile)
	assert.Nil(t, (*Session)(nil).Snapshot())
}

func TestSession_ExpiredBefore(t *testing.T) {
	now := time.Now()
	s := NewSession("abcd1234", "q", "a", now.Add(-25*time.Hour))
	assert.True(t, s.ExpiredBefore(now.Add(-24*time.Hour)))
	assert.False(t, s.ExpiredBefore(now.Add(-26*time.Hour)))
}
