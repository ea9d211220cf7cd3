package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/shared/apperr"
)

const internalErrorMessage = "Internal server error"

type Response struct {
	Success bool        `json:"success"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Created answers 201 with a Location header and no body
func Created(c *gin.Context, location string) {
	c.Header("Location", location)
	c.Status(http.StatusCreated)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// FromError renders err with the status of its kind. Unexpected failures
// are logged and answered with a generic message.
func FromError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	e, ok := apperr.As(err)
	if status == http.StatusInternalServerError || !ok {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", internalErrorMessage)
		return
	}
	ErrorResponse(c, status, e.Code, e.Message)
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", internalErrorMessage)
}
