package errors

import (
	"errors"
	"net/http"
)

type CustomError struct {
	Code    int
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func Technical(message string) error {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func BadRequest(message string) error {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NotFound(message string) error {
	return &CustomError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// GetStatusCode extracts the HTTP status code from an error, defaulting to 500.
func GetStatusCode(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}
