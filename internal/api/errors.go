package api

import (
	"errors"
	"net/http"

	"tutorbook/internal/logger"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindMethodNotSupported
	KindConflict
	KindDatastore
	KindMalformedRequest
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMethodNotSupported:
		return "method_not_supported"
	case KindConflict:
		return "conflict"
	case KindDatastore:
		return "datastore"
	case KindMalformedRequest:
		return "malformed_request"
	default:
		return "unknown"
	}
}

// Error is the single error shape services hand back to handlers.
// Message is what the client sees.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func MethodNotSupported() *Error {
	return &Error{Kind: KindMethodNotSupported, Message: "method not supported"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Datastore wraps a store failure, exposing its raw text to the caller.
func Datastore(err error) *Error {
	return &Error{Kind: KindDatastore, Message: err.Error(), Err: err}
}

func MalformedRequest(err error) *Error {
	return &Error{Kind: KindMalformedRequest, Message: err.Error(), Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func StatusCode(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindMethodNotSupported:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError translates err into a transport status and an {error} body.
// Errors that are not *Error are treated as datastore failures.
func RespondError(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Datastore(err)
	}

	status := StatusCode(apiErr.Kind)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error("request failed",
			"kind", apiErr.Kind.String(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: apiErr.Message})
}
