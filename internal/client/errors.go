package client

import "errors"

var (
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrAccountNotFound = errors.New("account not found")
	ErrNilDependency   = errors.New("client: nil dependency")
)
