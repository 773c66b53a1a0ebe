package serviceutils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func ResponseMessage(c echo.Context, code int, msg string) error {
	return c.JSON(code, MessageResponse{Message: msg})
}

func ResponseCreated(c echo.Context, msg, id string) error {
	return c.JSON(http.StatusCreated, CreatedResponse{Message: msg, ID: id})
}

func ResponseError(c echo.Context, code int, msg string, err error) error {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	return c.JSON(code, resp)
}
