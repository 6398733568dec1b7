package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/google/uuid"
)

var _ session.Repository = (*SessionRepository)(nil)

// maxIDAttempts bounds regeneration when a generated ID collides with a live record.
const maxIDAttempts = 16

type SessionRepositoryOption func(*SessionRepository)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) SessionRepositoryOption {
	return func(r *SessionRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides the session ID source.
func WithIDGenerator(gen func() string) SessionRepositoryOption {
	return func(r *SessionRepository) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// SessionRepository keeps sessions in process memory. A single mutex guards
// the map for the whole of every operation and is never held across I/O.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
	now      func() time.Time
	newID    func() string
}

func NewSessionRepository(opts ...SessionRepositoryOption) *SessionRepository {
	r := &SessionRepository{
		sessions: make(map[string]*session.Session),
		now:      time.Now,
		newID:    shortID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func shortID() string {
	return uuid.NewString()[:common.SessionIDLength]
}

func (r *SessionRepository) Create(ctx context.Context, question, answer string) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := r.newID()
		if id == "" {
			continue
		}
		if _, taken := r.sessions[id]; taken {
			continue
		}
		s := session.NewSession(id, question, answer, r.now())
		r.sessions[id] = s
		return s.Snapshot(), nil
	}
	return nil, fmt.Errorf("failed to allocate session id after %d attempts", maxIDAttempts)
}

func (r *SessionRepository) Get(_ context.Context, id string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.NewNotFoundError(session.EntityType, id)
	}
	return s.Snapshot(), nil
}

func (r *SessionRepository) UpdateAudio(_ context.Context, id, file string) error {
	if file == "" {
		return fmt.Errorf("%w: empty audio file name", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.AudioReady {
		return nil
	}
	s.AudioFile = file
	s.AudioReady = true
	return nil
}

func (r *SessionRepository) UpdateVideo(_ context.Context, id, file string) error {
	if file == "" {
		return fmt.Errorf("%w: empty video file name", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.VideoReady {
		return nil
	}
	if !s.AudioReady {
		return session.ErrAudioNotReady
	}
	s.VideoFile = file
	s.VideoReady = true
	return nil
}

func (r *SessionRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, s := range r.sessions {
		if s.ExpiredBefore(cutoff) {
			delete(r.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *SessionRepository) Count(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
