package pipeline

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestTaskTracker_WaitIdle(t *testing.T) {
	tracker := NewTaskTracker(context.Background(), quietLogger())
	assert.True(t, tracker.Wait(context.Background()))
	assert.Empty(t, tracker.Pending())
}

func TestTaskTracker_WaitsForNestedTasks(t *testing.T) {
	tracker := NewTaskTracker(context.Background(), quietLogger())
	var ran atomic.Int32

	tracker.Go("speech", "s1", func(ctx context.Context) {
		time.Sleep(10 * time.Millisecond)
		ran.Add(1)
		tracker.Go("render", "s1", func(ctx context.Context) {
			time.Sleep(10 * time.Millisecond)
			ran.Add(1)
		})
	})

	assert.True(t, tracker.Wait(context.Background()))
	assert.Equal(t, int32(2), ran.Load())
	assert.Empty(t, tracker.Pending())
}

func TestTaskTracker_WaitTimesOut(t *testing.T) {
	tracker := NewTaskTracker(context.Background(), quietLogger())
	release := make(chan struct{})
	tracker.Go("render", "s1", func(ctx context.Context) { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.False(t, tracker.Wait(ctx))
	assert.Len(t, tracker.Pending(), 1)

	close(release)
	assert.True(t, tracker.Wait(context.Background()))
}

func TestTaskTracker_RecoversPanics(t *testing.T) {
	tracker := NewTaskTracker(context.Background(), quietLogger())

	tracker.Go("speech", "s1", func(ctx context.Context) { panic("engine exploded") })

	assert.True(t, tracker.Wait(context.Background()))
	assert.Empty(t, tracker.Pending())
}

func TestTaskTracker_RefusesAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tracker := NewTaskTracker(ctx, quietLogger())
	cancel()

	started := tracker.Go("speech", "s1", func(ctx context.Context) {})
	assert.False(t, started)
	assert.True(t, tracker.Wait(context.Background()))
}

func TestTaskTracker_PassesBaseContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tracker := NewTaskTracker(ctx, quietLogger())
	stopped := make(chan struct{})

	tracker.Go("render", "s1", func(ctx context.Context) {
		<-ctx.Done()
		close(stopped)
	})
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("task did not observe cancellation")
	}
	assert.True(t, tracker.Wait(context.Background()))
}
