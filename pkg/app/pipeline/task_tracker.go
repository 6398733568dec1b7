package pipeline

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TaskTracker runs background stages on their own goroutines and keeps an
// explicit handle for each one, so shutdown and tests can wait for them.
type TaskTracker struct {
	ctx    context.Context
	logger *logrus.Logger

	mu     sync.Mutex
	tasks  map[uint64]*trackedTask
	nextID uint64
	idle   chan struct{}
}

type trackedTask struct {
	name      string
	sessionID string
	started   time.Time
}

func NewTaskTracker(ctx context.Context, logger *logrus.Logger) *TaskTracker {
	idle := make(chan struct{})
	close(idle)
	return &TaskTracker{
		ctx:    ctx,
		logger: logger,
		tasks:  make(map[uint64]*trackedTask),
		idle:   idle,
	}
}

// Go starts fn with the tracker's base context. It returns false without
// running fn once the base context is done.
func (t *TaskTracker) Go(name, sessionID string, fn func(ctx context.Context)) bool {
	t.mu.Lock()
	if t.ctx.Err() != nil {
		t.mu.Unlock()
		return false
	}
	if len(t.tasks) == 0 {
		t.idle = make(chan struct{})
	}
	t.nextID++
	id := t.nextID
	t.tasks[id] = &trackedTask{name: name, sessionID: sessionID, started: time.Now()}
	t.mu.Unlock()

	go func() {
		defer t.done(id)
		defer func() {
			if r := recover(); r != nil {
				t.logger.WithFields(logrus.Fields{
					"task":       name,
					"session_id": sessionID,
					"panic":      fmt.Sprint(r),
					"stack":      string(debug.Stack()),
				}).Error("background task panicked")
			}
		}()
		fn(t.ctx)
	}()
	return true
}

func (t *TaskTracker) done(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tasks, id)
	if len(t.tasks) == 0 {
		close(t.idle)
	}
}

// Wait blocks until no task is running or ctx is done, and reports which happened.
// Tasks started by running tasks are waited for as well.
func (t *TaskTracker) Wait(ctx context.Context) bool {
	for {
		t.mu.Lock()
		if len(t.tasks) == 0 {
			t.mu.Unlock()
			return true
		}
		idle := t.idle
		t.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return false
		}
	}
}

// Pending describes the running tasks in no particular order.
func (t *TaskTracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.tasks))
	for _, task := range t.tasks {
		out = append(out, fmt.Sprintf("%s:%s (%s)", task.name, task.sessionID, time.Since(task.started).Round(time.Millisecond)))
	}
	return out
}
