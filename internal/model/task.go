package model

import (
	"time"

	"github.com/google/uuid"
)

// Task tracks one single-item download through its stage transitions.
type Task struct {
	ID         string
	URL        string
	Status     TaskStatus
	OutputPath string // final path reported by the engine
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewTask creates a pending task for the given URL.
func NewTask(url string) *Task {
	return &Task{
		ID:        "task-" + uuid.NewString(),
		URL:       url,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Fail marks the task terminally failed with the given cause.
func (t *Task) Fail(err error) {
	t.Status = TaskStatusFailed
	if err != nil {
		t.LastError = err.Error()
	}
	t.FinishedAt = time.Now()
}

// Complete marks the task done with the engine-reported path.
func (t *Task) Complete(path string) {
	t.Status = TaskStatusCompleted
	t.OutputPath = path
	t.FinishedAt = time.Now()
}
