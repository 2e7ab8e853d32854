package graph

import (
	"errors"
	"fmt"
)

// ErrorKind tags an Error with the protocol condition that produced it.
type ErrorKind int

const (
	// KindRequestFailed is a transport-level failure (the request never
	// produced an HTTP status).
	KindRequestFailed ErrorKind = iota

	// KindNotFound is a 404 on a metadata operation.
	KindNotFound

	// KindFolderUnavailable means the destination's parent folder could not
	// be resolved or created.
	KindFolderUnavailable

	// KindSessionCreationFailed means createUploadSession did not return an
	// upload URL.
	KindSessionCreationFailed

	// KindSessionExpired is a 404 on a chunk request: the server discarded
	// the upload session. The caller must begin a new session.
	KindSessionExpired

	// KindNameConflict is a 409 on the final chunk: an item already exists
	// at the destination.
	KindNameConflict

	// KindRetryBudgetExceeded means a chunk kept failing with 5xx after the
	// maximum number of backoff retries.
	KindRetryBudgetExceeded

	// KindUnexpectedStatus is any response the upload protocol does not
	// define for the chunk's position.
	KindUnexpectedStatus

	// KindSourceUnreadable means the payload size could not be determined
	// before any session work started.
	KindSourceUnreadable
)

func (k ErrorKind) String() string {
	switch k {
	case KindRequestFailed:
		return "request failed"
	case KindNotFound:
		return "not found"
	case KindFolderUnavailable:
		return "folder unavailable"
	case KindSessionCreationFailed:
		return "upload session creation failed"
	case KindSessionExpired:
		return "upload session expired"
	case KindNameConflict:
		return "name conflict"
	case KindRetryBudgetExceeded:
		return "retry budget exceeded"
	case KindUnexpectedStatus:
		return "unexpected status"
	case KindSourceUnreadable:
		return "source unreadable"
	default:
		return "unknown"
	}
}

// Error is the tagged error returned by the Graph client. It carries enough
// context (status code, byte range, attempt count) to diagnose a failed
// transfer without re-running it.
type Error struct {
	Kind       ErrorKind
	Op         string
	Path       string
	Status     int
	RangeStart int64
	RangeEnd   int64
	Attempt    int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("graph: %s: %s", e.Op, e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.RangeEnd > 0 || e.RangeStart > 0 {
		msg += fmt.Sprintf(" (bytes %d-%d)", e.RangeStart, e.RangeEnd)
	}
	if e.Attempt > 0 {
		msg += fmt.Sprintf(" (attempt %d)", e.Attempt)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the condition is transient. Every retryable
// condition is retried inside the client, so errors that escape it are
// terminal for the session they belong to.
func (e *Error) Retryable() bool {
	return e.Kind == KindRequestFailed
}

// IsNotFound reports whether err is a Graph not-found error.
func IsNotFound(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindNotFound
}

// KindOf returns the ErrorKind of err, or ok=false if err is not a graph
// Error.
func KindOf(err error) (ErrorKind, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}
