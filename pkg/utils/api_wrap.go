package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teampulse/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps domain sentinel errors onto HTTP statuses.
// Anything unrecognized is treated as an internal error so raw store
// errors never reach the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrManagerOnly),
		errors.Is(err, ErrEmployeeOnly),
		errors.Is(err, ErrNotYourTeamMember),
		errors.Is(err, ErrNotAllowed):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrFeedbackNotFound),
		errors.Is(err, ErrRequestNotFound),
		errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoManagerAssigned),
		errors.Is(err, ErrInvalidManagerRef):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		logger.Errorf("database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	default:
		logger.Errorf("unhandled service error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
