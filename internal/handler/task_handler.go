package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/taskchat_backend/internal/domain"
	"github.com/locvowork/taskchat_backend/internal/logger"
	"github.com/locvowork/taskchat_backend/internal/service"
	"github.com/locvowork/taskchat_backend/internal/service/serviceutils"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateTaskRequest carries the full new state of a task. The update is a
// complete overwrite: an omitted status decays to false.
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      bool   `json:"status"`
}

type taskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// CreateTaskHandler handles POST /to-do-list
func (h *TaskHandler) CreateTaskHandler(c echo.Context) error {
	ctx := c.Request().Context()
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "title and description are required", nil)
	}

	task := domain.Task{Title: req.Title, Description: req.Description}
	id, err := h.svc.Create(ctx, &task)
	if err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("failed to create task: %v", err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to create task", err)
	}

	return serviceutils.ResponseCreated(c, "task created successfully", id)
}

// UpdateTaskHandler handles PUT /todo/:id
func (h *TaskHandler) UpdateTaskHandler(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "title and description are required", nil)
	}

	upd := domain.TaskUpdate{Title: req.Title, Description: req.Description, Status: req.Status}
	if err := h.svc.Update(ctx, id, &upd); err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("failed to update task %s: %v", id, err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to update task", err)
	}

	return serviceutils.ResponseMessage(c, http.StatusOK, "task updated successfully")
}

// ListTasksHandler handles GET /list
func (h *TaskHandler) ListTasksHandler(c echo.Context) error {
	ctx := c.Request().Context()
	filter := domain.TaskFilter{
		SortBy: c.QueryParam("sortBy"),
		Order:  c.QueryParam("order"),
		Search: c.QueryParam("search"),
	}

	tasks, err := h.svc.List(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			return serviceutils.ResponseError(c, http.StatusNotFound, "no tasks found", nil)
		}
		logger.ErrorLog(ctx, fmt.Sprintf("failed to fetch tasks: %v", err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to fetch tasks", err)
	}

	return c.JSON(http.StatusOK, taskListResponse{Tasks: tasks})
}

// DeleteTaskHandler handles DELETE /list/:id
func (h *TaskHandler) DeleteTaskHandler(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.svc.Delete(ctx, id); err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("failed to delete task %s: %v", id, err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to delete task", err)
	}

	return serviceutils.ResponseMessage(c, http.StatusOK, "task deleted successfully")
}
