package adapter

import "github.com/google/uuid"

const headerRequestID = "X-Request-ID"

// newRequestID returns a time-ordered id attached to every outbound request.
func newRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
