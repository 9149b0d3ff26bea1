package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the action is not allowed in the resource's current state.
var ErrConflict = errors.New("state conflict")

// ErrRemote indicates the Ledger API rejected or failed a call.
var ErrRemote = errors.New("ledger api error")

// RemoteError is a failure reported by the Ledger API. Message is the user facing text,
// UpstreamMessage is whatever the API put in its error body. Err holds the transport failure
// when the API could not be reached at all.
type RemoteError struct {
	StatusCode      int
	Message         string
	UpstreamMessage string
	Body            []byte
	Err             error
}

// NewRemoteError builds a RemoteError with the display message the dashboard shows for
// each status class.
func NewRemoteError(statusCode int, upstreamMessage string, body []byte) *RemoteError {
	return &RemoteError{
		StatusCode:      statusCode,
		Message:         remoteDisplayMessage(statusCode, upstreamMessage),
		UpstreamMessage: upstreamMessage,
		Body:            body,
	}
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewUnreachableError wraps a transport failure talking to the Ledger API.
func NewUnreachableError(err error) *RemoteError {
	return &RemoteError{
		Message: remoteDisplayMessage(0, ""),
		Err:     err,
	}
}

// Is lets callers match a RemoteError against ErrRemote and the sentinel that fits its status.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

func remoteDisplayMessage(status int, upstream string) string {
	orDefault := func(def string) string {
		if upstream != "" {
			return upstream
		}
		return def
	}

	switch {
	case status >= 500:
		return fmt.Sprintf("Server error: %s. Please try again later or contact admin if the problem persists.", orDefault("Something went wrong on our end"))
	case status == http.StatusNotFound:
		return "Resource not found: " + orDefault("The requested item does not exist")
	case status == http.StatusUnauthorized:
		return "Unauthorized. Please login again."
	case status == http.StatusForbidden:
		return "Access denied. You do not have permission to perform this action."
	case status == http.StatusBadRequest:
		return "Invalid request: " + orDefault("Please check your input")
	case status == 0:
		return orDefault("Ledger API is unreachable")
	default:
		return orDefault(fmt.Sprintf("HTTP error! status: %d", status))
	}
}
