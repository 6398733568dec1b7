package session

import (
	"context"
	"time"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=session_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// Create stores a fully built record and returns a snapshot carrying its new ID.
	Create(ctx context.Context, question, answer string) (*Session, error)
	// Get returns a snapshot, or a domain not-found error.
	Get(ctx context.Context, id string) (*Session, error)
	// UpdateAudio is a no-op when the session is gone.
	UpdateAudio(ctx context.Context, id, file string) error
	// UpdateVideo is a no-op when the session is gone and fails with
	// ErrAudioNotReady when audio has not been recorded yet.
	UpdateVideo(ctx context.Context, id, file string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) int
}
