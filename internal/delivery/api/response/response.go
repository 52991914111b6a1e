// Package response writes the JSON envelope shared by every API route.
package response

import (
	"net/http"
	"time"

	deliverycontext "swapmarket/internal/delivery/context"
	domainerrors "swapmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response. Exactly one of Data and Error is set.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g. "CART_ITEM_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Kind    string `json:"kind,omitempty"`    // Failure classification clients branch on
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		Timestamp: time.Now().UTC(),
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// OK is Success with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created is Success with 201.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, kind, message string, details any) error {
	// Details are withheld for server and auth failures
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Kind:    kind,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, string(domainerrors.KindValidation), message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, string(domainerrors.KindAuth), message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, string(domainerrors.KindForbidden), message, nil)
}

// Conflict returns a 409 error
func Conflict(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusConflict, errorCode, string(domainerrors.KindConflict), message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, string(domainerrors.KindTransient), message, nil)
}
