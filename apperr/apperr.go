// Package apperr gives every failure a kind so route handlers can map each to
// a stable status code instead of guessing at the boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindUpstream
)

type Error struct {
	Kind Kind
	Msg  string
	// Fields is set for form-validation failures: field name -> messages.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// ValidationFields wraps a field-error mapping produced by a form.
func ValidationFields(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Msg: "validation failed", Fields: fields}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the error as JSON. Validation failures carry the field map as
// the body; everything else is an {error} envelope. Wrapped internals never
// reach the client.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	var e *Error
	if errors.As(err, &e) {
		if e.Fields != nil {
			c.JSON(status, e.Fields)
			return
		}
		c.JSON(status, gin.H{"error": e.Msg})
		return
	}
	c.JSON(status, gin.H{"error": "internal server error"})
}
