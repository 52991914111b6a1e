package errors

import (
	"net/http"

	"swapmarket/internal/errors"
)

// Kind classifies a failure so callers can react to it without parsing messages
type Kind string

const (
	// KindAuth covers bad credentials, duplicate registration and expired sessions
	KindAuth Kind = "auth"
	// KindNotFound covers missing rows and ownership-scoped writes that matched nothing
	KindNotFound Kind = "not_found"
	// KindForbidden covers callers without the required role
	KindForbidden Kind = "forbidden"
	// KindValidation covers rejected input
	KindValidation Kind = "validation"
	// KindConflict covers duplicate submissions and stale optimistic tokens
	KindConflict Kind = "conflict"
	// KindTransient covers storage and network failures that are safe to retry
	KindTransient Kind = "transient"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf returns the kind of the first AppError in err's chain.
// Unclassified errors are treated as transient.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindTransient
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindAuth,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		KindTransient,
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	// Authentication-related errors
	ErrAuthNotFound = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"AUTH_NOT_FOUND",
		"authentication method not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"sign in required",
		"",
	)

	ErrAccessTokenInvalid = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"ACCESS_TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindTransient,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindAuth,
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password is too weak",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		KindAuth,
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"password contains forbidden words or patterns",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"invalid ID token",
		"",
	)

	ErrRefreshTokenNotFound = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_NOT_FOUND",
		"refresh token not found",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"refresh token expired",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductInvalid = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PRODUCT_INVALID",
		"product name, price and category are required and price must not be negative",
		"",
	)

	ErrImageInvalid = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"IMAGE_INVALID",
		"unsupported or oversized image",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		KindTransient,
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"failed to store image",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"profile not found",
		"",
	)

	// Cart-related errors
	ErrCartItemNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"cart item not found",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity must be at least 1",
		"",
	)

	ErrCartEmpty = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"CART_EMPTY",
		"cart is empty",
		"",
	)

	// Swap request errors
	ErrSwapRequestNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"SWAP_REQUEST_NOT_FOUND",
		"swap request not found",
		"",
	)

	ErrSwapMessageRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"SWAP_MESSAGE_REQUIRED",
		"a message is required for a swap request",
		"",
	)

	ErrSwapOwnProduct = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"SWAP_OWN_PRODUCT",
		"cannot request a swap for your own product",
		"",
	)

	ErrInvalidSwapStatus = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_SWAP_STATUS",
		"swap status must be accepted or rejected",
		"",
	)

	// Role-related errors
	ErrInvalidRole = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_ROLE",
		"role must be admin or user",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		KindConflict,
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"maximum number of signed-in devices reached",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindTransient,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrDataUnavailable = NewBaseError(
		KindTransient,
		http.StatusServiceUnavailable,
		"DATA_UNAVAILABLE",
		"data is temporarily unavailable, retry later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindTransient,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"CONFLICT",
		"resource was modified concurrently",
		"",
	)

	ErrRequestInFlight = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"REQUEST_IN_FLIGHT",
		"an identical request is already being processed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind reports storage failures as transient
func (e *DatabaseExecuteError) Kind() Kind {
	return KindTransient
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
