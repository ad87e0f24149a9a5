// Package api exposes the REST surface: tick writes, OHLC queries and
// service health.
package api

import (
	"net/http"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Code      string    `json:"code,omitempty"`
	Field     string    `json:"field,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func respond(c *gin.Context, httpStatus int, message string, data any) {
	c.JSON(httpStatus, Response{
		Status:    "success",
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func respondError(c *gin.Context, err error) {
	details, ok := err.(*errors.ErrorDetails)
	if !ok {
		details = errors.NewErrorDetails("internal error", string(errors.GeneralInternalError), "")
	}

	c.JSON(httpStatus(errors.ErrorCode(details.Code)), Response{
		Status:    "error",
		Message:   details.Message,
		Code:      details.Code,
		Field:     details.Field,
		Timestamp: time.Now().UTC(),
	})
}

// httpStatus maps an error code onto its HTTP status.
func httpStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ValidationError, errors.RangeTooLarge:
		return http.StatusBadRequest
	case errors.MissingTimezone:
		return http.StatusUnprocessableEntity
	case errors.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
