package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	KindNotFound     = "not_found"
	KindValidation   = "validation_error"
	KindEmptyCart    = "empty_cart"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindInternal     = "internal"
)

// Error is an application error with a stable machine-readable kind and a
// display message. Code is the HTTP status it maps to.
type Error struct {
	Code    int
	Kind    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *Error {
	return &Error{Code: code, Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func EmptyCart(message string) *Error {
	return New(http.StatusBadRequest, KindEmptyCart, message, nil)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, KindInternal, message, err)
}

// Respond writes err as a JSON response. Unknown error types become a
// generic 500 so internal details never leak to the client.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("something went wrong", err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
}
