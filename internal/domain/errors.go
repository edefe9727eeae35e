package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSecretNotFound = errors.New("secret not found")
	ErrNoSavedState   = errors.New("no saved state")
)

type ErrorKind string

const (
	ErrorKindTimeout           ErrorKind = "timeout"
	ErrorKindUnreachable       ErrorKind = "unreachable"
	ErrorKindServer            ErrorKind = "server_error"
	ErrorKindMalformedResponse ErrorKind = "malformed_response"
	ErrorKindNoSavedState      ErrorKind = "no_saved_state"
)

// SessionError is the tagged failure produced at the transport and storage
// boundaries.
type SessionError struct {
	Kind    ErrorKind
	Op      string
	Status  int
	Message string
	Trace   string
	Err     error
}

func (e *SessionError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.Status != 0 {
		prefix = fmt.Sprintf("%s (status %d)", prefix, e.Status)
	}
	if msg == "" {
		return prefix
	}

	return prefix + ": " + msg
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func (e *SessionError) Is(target error) bool {
	return e.Kind == ErrorKindNoSavedState && target == ErrNoSavedState
}

// KindOf returns the kind of the first SessionError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	if errors.Is(err, ErrNoSavedState) {
		return ErrorKindNoSavedState, true
	}

	var sessionErr *SessionError
	if errors.As(err, &sessionErr) {
		return sessionErr.Kind, true
	}

	return "", false
}
