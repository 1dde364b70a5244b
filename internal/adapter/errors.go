package adapter

import (
	"errors"
	"fmt"
)

// DefaultAuthErrorMessage is used when the service rejects a login without
// saying why.
const DefaultAuthErrorMessage = "Unknown error"

var (
	// ErrNetwork indicates a transport failure or a non-2xx response.
	ErrNetwork = errors.New("network error")

	// ErrAuthentication is matched by every [*AuthenticationError].
	ErrAuthentication = errors.New("authentication failed")

	// ErrProtocol indicates a response the client does not understand.
	ErrProtocol = errors.New("unexpected response from vault service")
)

// AuthenticationError carries the message the service attached to a
// rejected login.
type AuthenticationError struct {
	Message string
	Cause   string
}

func (e *AuthenticationError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrAuthentication, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuthentication, e.Message)
}

// Is reports whether target is ErrAuthentication.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}
