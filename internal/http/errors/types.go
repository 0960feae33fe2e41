package errors

import (
	"fmt"
	"net/http"
)

// AppError es el error estándar de la capa HTTP: status + código + mensaje.
// Message es lo que ve el caller; Err es la causa, solo para logs.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FromError convierte cualquier error en *AppError; lo desconocido es 500.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrInternalServerError.WithCause(err)
}

// WithMessage devuelve una COPIA con otro mensaje (ej. el body del upstream).
func (e *AppError) WithMessage(msg string) *AppError {
	newErr := *e
	newErr.Message = msg
	return &newErr
}

// WithCause devuelve una COPIA con la causa original.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// ─── 400 ───

var (
	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Bad request",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "Invalid JSON body",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrMissingFields = &AppError{
		Code:       "MISSING_FIELDS",
		Message:    "Email and password are required",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrUpstreamRejected: el upstream respondió 4xx/5xx a una petición del
	// caller. El mensaje se reemplaza por el body recibido.
	ErrUpstreamRejected = &AppError{
		Code:       "UPSTREAM_REJECTED",
		Message:    "Upstream rejected the request",
		HTTPStatus: http.StatusBadRequest,
	}
)

// ─── 404 / 405 ───

var (
	ErrRouteNotFound = &AppError{
		Code:       "ROUTE_NOT_FOUND",
		Message:    "Route not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrMethodNotAllowed = &AppError{
		Code:       "METHOD_NOT_ALLOWED",
		Message:    "Method not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
)

// ─── 500 ───

var (
	ErrInternalServerError = &AppError{
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrUpstreamUnavailable = &AppError{
		Code:       "UPSTREAM_UNAVAILABLE",
		Message:    "Failed to send sign-up request",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrUpstreamResponse = &AppError{
		Code:       "UPSTREAM_BAD_RESPONSE",
		Message:    "Failed to parse upstream response",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrUserRecord = &AppError{
		Code:       "USER_RECORD_FAILED",
		Message:    "User record operation failed",
		HTTPStatus: http.StatusInternalServerError,
	}
)
