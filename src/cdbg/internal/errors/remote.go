package errors

import (
	stderr "errors"
	"fmt"
)

// TransportTimeoutError is the expected outcome of a long poll that observed no change.
type TransportTimeoutError struct {
	Op  string
	Err error
}

// Error is an implementation of the error interface.
func (e *TransportTimeoutError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: wait expired", e.Op)
	}
	return fmt.Sprintf("%s: timed out: %v", e.Op, e.Err)
}

func (e *TransportTimeoutError) Unwrap() error { return e.Err }

// RemoteConflictError signals that remote state changed and the request should be issued again.
type RemoteConflictError struct {
	Op  string
	Err error
}

// Error is an implementation of the error interface.
func (e *RemoteConflictError) Error() string {
	return fmt.Sprintf("%s: conflict: %v", e.Op, e.Err)
}

func (e *RemoteConflictError) Unwrap() error { return e.Err }

// AuthFailureError indicates the credentials were rejected. It is fatal to background listening.
type AuthFailureError struct {
	Op   string
	Code int
	Err  error
}

// Error is an implementation of the error interface.
func (e *AuthFailureError) Error() string {
	return fmt.Sprintf("%s: not authorized (%d): %v", e.Op, e.Code, e.Err)
}

func (e *AuthFailureError) Unwrap() error { return e.Err }

// RemoteRejectedError is a completed call whose payload says the backend refused the operation.
type RemoteRejectedError struct {
	Op string
	// Message is the already formatted, user facing reason.
	Message string
}

// Error is an implementation of the error interface.
func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("%s: rejected: %s", e.Op, e.Message)
}

// NotFoundError indicates the backend does not know the requested resource.
type NotFoundError struct {
	Kind string
	ID   string
}

// Error is an implementation of the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IsTimeout reports whether a TransportTimeoutError is part of the error chain.
func IsTimeout(e error) bool {
	var target *TransportTimeoutError
	return stderr.As(e, &target)
}

// IsConflict reports whether a RemoteConflictError is part of the error chain.
func IsConflict(e error) bool {
	var target *RemoteConflictError
	return stderr.As(e, &target)
}

// IsAuthFailure reports whether an AuthFailureError is part of the error chain.
func IsAuthFailure(e error) bool {
	var target *AuthFailureError
	return stderr.As(e, &target)
}

// IsNotFound reports whether a NotFoundError is part of the error chain.
func IsNotFound(e error) bool {
	var target *NotFoundError
	return stderr.As(e, &target)
}

// RejectedMessage returns the user facing message and true if a RemoteRejectedError is part of the error chain.
func RejectedMessage(e error) (string, bool) {
	var target *RemoteRejectedError
	if !stderr.As(e, &target) {
		return "", false
	}
	return target.Message, true
}
