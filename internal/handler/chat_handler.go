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

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type PostMessageRequest struct {
	Username string `json:"username" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type messageListResponse struct {
	Messages []domain.Message `json:"messages"`
}

// PostMessageHandler handles POST /chat
func (h *ChatHandler) PostMessageHandler(c echo.Context) error {
	ctx := c.Request().Context()
	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "username and message are required", nil)
	}

	msg := domain.Message{Username: req.Username, Message: req.Message}
	id, err := h.svc.Post(ctx, &msg)
	if err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("failed to send message: %v", err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to send message", err)
	}

	return serviceutils.ResponseCreated(c, "message sent successfully", id)
}

// ListMessagesHandler handles GET /chats
func (h *ChatHandler) ListMessagesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.svc.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			return serviceutils.ResponseError(c, http.StatusNotFound, "no messages found", nil)
		}
		logger.ErrorLog(ctx, fmt.Sprintf("failed to fetch messages: %v", err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "failed to fetch messages", err)
	}

	return c.JSON(http.StatusOK, messageListResponse{Messages: messages})
}
