package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"errorCode"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Respond writes the envelope for err. Anything that is not a BusinessError is
// logged and hidden behind a generic 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		Internal(c, "internal_error", "Internal Server Error")
		return
	}

	switch KindOf(err) {
	case KindUnauthorized:
		Unauthorized(c, be.Code, messageFor(be.Code))
	case KindForbidden:
		Forbidden(c, be.Code, messageFor(be.Code))
	case KindNotFound:
		NotFound(c, be.Code, messageFor(be.Code))
	case KindConflict:
		Conflict(c, be.Code, messageFor(be.Code))
	default:
		BadRequest(c, be.Code, messageFor(be.Code))
	}
}

var messages = map[string]string{
	"booking_not_found":   "Booking not found.",
	"message_not_found":   "Message not found.",
	"trainer_not_found":   "Trainer not found.",
	"user_not_found":      "User not found.",
	"email_taken":         "Email is already registered.",
	"invalid_credentials": "Invalid credentials.",
	"invalid_transition":  "Booking is no longer pending.",
	"forbidden":           "Not allowed.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
