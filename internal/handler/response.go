package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps application error codes to HTTP statuses and writes the
// error envelope.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch apperrors.CodeOf(err) {
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case apperrors.ErrConflict:
		status = http.StatusConflict
		message = err.Error()
	case apperrors.ErrBadRequest:
		status = http.StatusBadRequest
		message = err.Error()
	case apperrors.ErrUnauthenticated, apperrors.ErrInvalidCredentials:
		status = http.StatusUnauthorized
		message = err.Error()
	}

	c.JSON(status, NewErrorResponse(message))
}
