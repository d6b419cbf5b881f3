package errors

import (
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")

	ErrMissingFields  = errors.New("missing required fields")
	ErrInvalidAmount  = errors.New("invalid transfer amount")
	ErrSelfTransfer   = errors.New("cannot transfer to the same user")
	ErrTransferFailed = errors.New("transfer failed")
	ErrHistoryFailed  = errors.New("failed to retrieve transactions")
)

// OpError reports an infrastructure failure under one of the operation sentinels above.
type OpError struct {
	Kind  error
	Cause error
}

func Wrap(kind, cause error) error {
	return &OpError{Kind: kind, Cause: cause}
}

func (e *OpError) Error() string {
	return e.Kind.Error() + ": " + e.Cause.Error()
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}
