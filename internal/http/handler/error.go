package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docdash/internal/http/middleware"
	"docdash/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// apiError is the HTTP rendering of a service sentinel.
type apiError struct {
	status  int
	code    string
	message string
}

// serviceErrors maps service sentinels to responses. Order matters only for
// errors wrapping more than one sentinel.
var serviceErrors = []struct {
	err error
	api apiError
}{
	{service.ErrIDRequired, apiError{fiber.StatusBadRequest, "INVALID_ID", "invalid id format"}},
	{service.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "document not found"}},
	{service.ErrSessionNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "upload session not found"}},
	{service.ErrUploadNotReady, apiError{fiber.StatusConflict, "UPLOAD_NOT_READY", "select a file before starting the upload"}},
	{service.ErrUploadBusy, apiError{fiber.StatusConflict, "UPLOAD_BUSY", "upload in progress"}},
	{service.ErrServiceClosed, apiError{fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "service shutting down"}},
}

var internalError = apiError{fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"}

// classify returns the response for err. Unknown errors become
// INTERNAL_ERROR so internal details never leak.
func classify(err error) apiError {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.api
		}
	}
	return internalError
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "UPLOAD_NOT_READY", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError renders an error returned by a service.
func writeServiceError(c *fiber.Ctx, err error) error {
	e := classify(err)
	return writeError(c, e.status, e.code, e.message)
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses. Service sentinels returned straight from a handler get the same
// mapping as writeServiceError.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeServiceError(c, err)
		}

		switch fe.Code {
		case fiber.StatusBadRequest:
			return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, fe.Code, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusServiceUnavailable:
			return writeError(c, fe.Code, "SERVICE_UNAVAILABLE", "service unavailable")
		default:
			return writeError(c, fe.Code, internalError.code, internalError.message)
		}
	}
}
