package models

// Credentials holds the username and master password entered by the user.
// The value is transient: it lives for the duration of a single login or
// open call and is never written anywhere.
type Credentials struct {
	Username string
	Password string
}

// SessionID is the opaque token issued by the remote service on login. It is
// only valid between login and logout of a single vault fetch and is passed
// explicitly to every call that needs it.
type SessionID string

// String hides the token value from accidental formatting.
func (s SessionID) String() string {
	if s == "" {
		return ""
	}
	return "SessionID[redacted]"
}
