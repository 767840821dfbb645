package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError represents a classified application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// NewFetchError returns an error for a failed page fetch (transport failure
// or non-2xx response)
func NewFetchError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "Page fetch failed",
		Detail:  detail,
	}
}

// NewNotFoundError returns an error for an expected page element that is
// absent from the markup
func NewNotFoundError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusNotFound,
		Message: "Expected element not found",
		Detail:  detail,
	}
}

// NewTranslationError returns an error for a remote translation call that
// failed or returned unusable content
func NewTranslationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Translation failed",
		Detail:  detail,
	}
}

// IsNotFound reports whether err classifies as a missing-element error
func IsNotFound(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == http.StatusNotFound
}

// IsFetchError reports whether err classifies as a page fetch failure
func IsFetchError(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == http.StatusBadGateway
}

// IsTranslationError reports whether err classifies as a failed or unusable
// translation response
func IsTranslationError(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == http.StatusUnprocessableEntity
}
