package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies the class of an application error.
type ErrorCode string

// AppError is the error type carried between services and handlers.
type AppError struct {
	Code     ErrorCode
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors. Client-facing messages keep the wire contract of the
// public API, which speaks Spanish.
var (
	ErrMovieNotFound     = New(CodeMovieNotFound, "Película no encontrada", http.StatusNotFound)
	ErrNoMoviesForPerson = New(CodeMovieNotFound, "No se encontraron películas para esta persona", http.StatusNotFound)
	ErrPersonNotFound    = New(CodePersonNotFound, "Persona no encontrada", http.StatusNotFound)
	ErrCastEntryNotFound = New(CodeCastEntryNotFound, "Reparto no encontrado", http.StatusNotFound)
	ErrNoFileUploaded    = New(CodeFileMissing, "No se ha subido ninguna imagen", http.StatusBadRequest)
)

func ValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// InternalError wraps a store or filesystem failure. The underlying
// message is surfaced verbatim to the client.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, err.Error(), http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeMovieNotFound, message, http.StatusNotFound)
}
