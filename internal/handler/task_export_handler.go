package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/taskchat_backend/internal/config"
	"github.com/locvowork/taskchat_backend/internal/domain"
	"github.com/locvowork/taskchat_backend/internal/logger"
	"github.com/locvowork/taskchat_backend/internal/report"
	"github.com/locvowork/taskchat_backend/internal/service/serviceutils"
)

// ExportTasksHandler handles GET /list/export. It accepts the same query
// parameters as the listing endpoint and renders the result as a spreadsheet.
func (h *TaskHandler) ExportTasksHandler(c echo.Context) error {
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

	layout, err := report.LoadLayout(config.DefaultEnvConfig.REPORT_CONFIG_PATH)
	if err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("failed to load report layout: %v", err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to export tasks", err)
	}

	f, err := report.BuildTaskWorkbook(layout, tasks)
	if err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("failed to build task workbook: %v", err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to export tasks", err)
	}

	// Set headers for file download
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tasks_export_%s.xlsx"`, time.Now().Format("2006-01-02")))

	return f.Write(c.Response().Writer)
}
