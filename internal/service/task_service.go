package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/locvowork/taskchat_backend/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, task *domain.Task) (string, error)
	Update(ctx context.Context, id string, upd *domain.TaskUpdate) error
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// Create stamps the record before writing: new tasks always start with
// status false, and createdAt equals updatedAt.
func (s *taskService) Create(ctx context.Context, task *domain.Task) (string, error) {
	now := time.Now().UTC()
	task.Status = false
	task.CreatedAt = now
	task.UpdatedAt = now
	return s.repo.CreateTask(ctx, task)
}

func (s *taskService) Update(ctx context.Context, id string, upd *domain.TaskUpdate) error {
	upd.UpdatedAt = time.Now().UTC()
	return s.repo.UpdateTask(ctx, id, upd)
}

// List fetches the base result set, then applies the substring filter and
// ordering in memory. domain.ErrNoResults covers only an empty base result:
// a search that empties a non-empty result still returns an empty list.
func (s *taskService) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, filter.Search)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoResults
	}

	if filter.Search != "" {
		tasks = filterTasks(tasks, filter.Search)
	}
	sortTasks(tasks, filter.SortBy, filter.Order)
	return tasks, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteTask(ctx, id)
}

// filterTasks keeps tasks whose title or description contains the search
// term, compared case-insensitively. The result is never nil.
func filterTasks(tasks []domain.Task, search string) []domain.Task {
	needle := strings.ToLower(search)
	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// sortTasks orders tasks in place. Descending is the default; only an
// explicit "asc" flips it. An unknown sortBy leaves store order untouched.
func sortTasks(tasks []domain.Task, sortBy, order string) {
	asc := order == domain.OrderAsc
	switch sortBy {
	case domain.SortByTimestamp:
		sort.SliceStable(tasks, func(i, j int) bool {
			if asc {
				return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
			}
			return tasks[j].CreatedAt.Before(tasks[i].CreatedAt)
		})
	case domain.SortByStatus:
		sort.SliceStable(tasks, func(i, j int) bool {
			if asc {
				return !tasks[i].Status && tasks[j].Status
			}
			return tasks[i].Status && !tasks[j].Status
		})
	}
}
