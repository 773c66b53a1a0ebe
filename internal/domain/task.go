package domain

import (
	"context"
	"time"
)

// Recognized values for TaskFilter.SortBy and TaskFilter.Order. Anything
// else falls back to store-native ordering / descending.
const (
	SortByTimestamp = "timestamp"
	SortByStatus    = "status"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Task represents a single to-do item stored in the document collection.
type Task struct {
	ID          string    `firestore:"-" json:"id"` // Document ID (store-assigned)
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Status      bool      `firestore:"status" json:"status"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// TaskUpdate carries the full set of writable fields for an update. The
// write overwrites all of them; there is no partial merge.
type TaskUpdate struct {
	Title       string
	Description string
	Status      bool
	UpdatedAt   time.Time
}

// TaskFilter holds the optional listing parameters.
type TaskFilter struct {
	SortBy string
	Order  string
	Search string
}

// TaskRepository is the document-store surface the task endpoints need.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *Task) (string, error)
	UpdateTask(ctx context.Context, id string, upd *TaskUpdate) error
	ListTasks(ctx context.Context, search string) ([]Task, error)
	DeleteTask(ctx context.Context, id string) error
}
