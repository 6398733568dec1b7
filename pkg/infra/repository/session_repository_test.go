package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/domain"
	"github.com/NeuralTrust/TutorGate/pkg/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	created, err := repo.Create(ctx, "What is gravity?", "A force.")
	require.NoError(t, err)
	assert.Len(t, created.ID, 8)
	assert.False(t, created.AudioReady)
	assert.False(t, created.VideoReady)
	assert.Empty(t, created.AudioFile)
	assert.Empty(t, created.VideoFile)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "What is gravity?", got.Question)
	assert.Equal(t, "A force.", got.Answer)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	repo := NewSessionRepository()

	got, err := repo.Get(context.Background(), "deadbeef")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestSessionRepository_Get_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	created, err := repo.Create(ctx, "q", "a")
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	got.AudioReady = true
	got.AudioFile = "tampered.wav"

	again, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, again.AudioReady)
	assert.Empty(t, again.AudioFile)
}

func TestSessionRepository_IDCollisionRegenerates(t *testing.T) {
	ids := []string{"aaaaaaaa", "aaaaaaaa", "bbbbbbbb"}
	var i int
	repo := NewSessionRepository(WithIDGenerator(func() string {
		id := ids[i]
		i++
		return id
	}))
	ctx := context.Background()

	first, err := repo.Create(ctx, "q1", "a1")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "q2", "a2")
	require.NoError(t, err)

	assert.Equal(t, "aaaaaaaa", first.ID)
	assert.Equal(t, "bbbbbbbb", second.ID)
}

func TestSessionRepository_IDExhaustion(t *testing.T) {
	repo := NewSessionRepository(WithIDGenerator(func() string { return "samesame" }))
	ctx := context.Background()

	_, err := repo.Create(ctx, "q1", "a1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "q2", "a2")
	assert.Error(t, err)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestSessionRepository_UpdateAudio(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	s, err := repo.Create(ctx, "q", "a")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateAudio(ctx, s.ID, "audio_"+s.ID+".wav"))
	require.NoError(t, repo.UpdateAudio(ctx, s.ID, "second.wav"))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.AudioReady)
	assert.Equal(t, "audio_"+s.ID+".wav", got.AudioFile)
}

func TestSessionRepository_UpdateAudio_MissingSessionIsNoop(t *testing.T) {
	repo := NewSessionRepository()
	assert.NoError(t, repo.UpdateAudio(context.Background(), "gone0000", "audio_gone0000.wav"))
	assert.Equal(t, 0, repo.Count(context.Background()))
}

func TestSessionRepository_UpdateAudio_EmptyFile(t *testing.T) {
	repo := NewSessionRepository()
	err := repo.UpdateAudio(context.Background(), "any", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionRepository_UpdateVideo_RequiresAudio(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	s, err := repo.Create(ctx, "q", "a")
	require.NoError(t, err)

	err = repo.UpdateVideo(ctx, s.ID, "video_"+s.ID+".mp4")
	assert.ErrorIs(t, err, session.ErrAudioNotReady)

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.VideoReady)
	assert.Empty(t, got.VideoFile)

	require.NoError(t, repo.UpdateAudio(ctx, s.ID, "audio_"+s.ID+".wav"))
	require.NoError(t, repo.UpdateVideo(ctx, s.ID, "video_"+s.ID+".mp4"))
	require.NoError(t, repo.UpdateVideo(ctx, s.ID, "other.mp4"))

	got, err = repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.VideoReady)
	assert.Equal(t, "video_"+s.ID+".mp4", got.VideoFile)
}

func TestSessionRepository_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	repo := NewSessionRepository(WithClock(func() time.Time { return clock }))

	clock = now.Add(-25 * time.Hour)
	old, err := repo.Create(ctx, "old", "a")
	require.NoError(t, err)
	clock = now.Add(-23 * time.Hour)
	young, err := repo.Create(ctx, "young", "a")
	require.NoError(t, err)

	deleted, err := repo.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = repo.Get(ctx, old.ID)
	assert.True(t, domain.IsNotFoundError(err))
	_, err = repo.Get(ctx, young.ID)
	assert.NoError(t, err)
}

func TestSessionRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	const n = 200
	var wg sync.WaitGroup
	results := make([]*session.Session, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := repo.Create(ctx, fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
			if err != nil {
				return
			}
			results[i] = s
			_ = repo.UpdateAudio(ctx, s.ID, "audio_"+s.ID+".wav")
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for i, s := range results {
		require.NotNil(t, s)
		_, dup := seen[s.ID]
		assert.False(t, dup, "duplicate id %s", s.ID)
		seen[s.ID] = struct{}{}

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("question %d", i), got.Question)
		assert.Equal(t, fmt.Sprintf("answer %d", i), got.Answer)
		assert.Equal(t, "audio_"+s.ID+".wav", got.AudioFile)
	}
	assert.Equal(t, n, repo.Count(ctx))
}
