package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/locvowork/taskchat_backend/internal/domain"
)

const (
	tasksCollection = "tasks"

	// prefixRangeEnd sorts after every other character Firestore stores, so
	// the half-open range [s, s+prefixRangeEnd) matches exactly the titles
	// that start with s.
	prefixRangeEnd = ""
)

// CreateTask adds a new task document and returns the store-assigned ID.
func (c *Client) CreateTask(ctx context.Context, task *domain.Task) (string, error) {
	ref, _, err := c.fs.Collection(tasksCollection).Add(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to add task document: %w", err)
	}
	return ref.ID, nil
}

// UpdateTask overwrites the mutable fields of the task document with the
// given ID. The update paths must match the firestore tags on domain.Task.
// Firestore rejects updates to documents that do not exist.
func (c *Client) UpdateTask(ctx context.Context, id string, upd *domain.TaskUpdate) error {
	_, err := c.fs.Collection(tasksCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: upd.Title},
		{Path: "description", Value: upd.Description},
		{Path: "status", Value: upd.Status},
		{Path: "updatedAt", Value: upd.UpdatedAt},
	})
	if err != nil {
		return fmt.Errorf("failed to update task document %s: %w", id, err)
	}
	return nil
}

// ListTasks fetches task documents in store order. When search is non-empty
// the query is narrowed server-side to titles within [search, search+"").
// The document ID is copied onto each task after decoding.
func (c *Client) ListTasks(ctx context.Context, search string) ([]domain.Task, error) {
	q := c.fs.Collection(tasksCollection).Query
	if search != "" {
		q = q.Where("title", ">=", search).Where("title", "<", search+prefixRangeEnd)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var tasks []domain.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate task documents: %w", err)
		}

		var t domain.Task
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("failed to decode task document %s: %w", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// DeleteTask removes the task document with the given ID. Deleting a
// document that does not exist is not an error.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(tasksCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete task document %s: %w", id, err)
	}
	return nil
}
