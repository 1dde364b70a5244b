// Package crypto implements the client-side cryptography of the vault:
// password-based key derivation, the login authentication hash, and
// decryption of individual vault fields.
//
// The scheme:
//
//	Key      = PBKDF2-SHA256(password, salt=username, iterations, 32)
//	AuthHash = hex(PBKDF2-SHA256(Key, salt=password, 1, 32))
//	Field    = AES-256-ECB(Key) | "!" || IV || AES-256-CBC(Key, IV)
//
// The key never leaves the client; only AuthHash is sent to the server.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain groups the key derivation and field decryption operations used by
// the session service and the vault. It knows nothing about the network or
// storage.
type KeyChain interface {
	// DeriveKey derives the 32-byte vault key from the master password using
	// the username as salt. Returns ErrInvalidIterations if iterations < 2.
	DeriveKey(username, password string, iterations int) ([]byte, error)

	// AuthHash computes the hex-encoded login hash sent to the server in
	// place of the password. Returns ErrInvalidIterations if iterations < 2.
	AuthHash(username, password string, iterations int) (string, error)

	// Decrypt decrypts a single vault field with key and returns it as a
	// UTF-8 string. Every failure matches ErrDecrypt.
	Decrypt(data, key []byte) (string, error)
}
