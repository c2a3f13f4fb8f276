package utils

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Server-side
// failures are logged with full detail and answered with a generic message
// unless APP_ENV=development.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrNoGeocodingResult):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUpstream):
		log.Printf("upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, serverMessage(err, "Upstream service unavailable"))
	case errors.Is(err, ErrDatabaseError):
		log.Printf("database error: %v", err)
		RespondError(c, http.StatusInternalServerError, serverMessage(err, "Internal server error"))
	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, serverMessage(err, "Internal server error"))
	}
}

func serverMessage(err error, generic string) string {
	if os.Getenv("APP_ENV") == "development" {
		return err.Error()
	}
	return generic
}
