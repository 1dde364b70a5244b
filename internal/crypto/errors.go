// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIterations is returned when the server-published iteration
	// count is below 2. The legacy single-iteration mode is not supported.
	ErrInvalidIterations = errors.New("iterations < 2 are not supported")

	// ErrDecrypt is the umbrella error for every field decryption failure.
	// A wrong password and corrupted data are indistinguishable here.
	ErrDecrypt = errors.New("decryption failed")

	// ErrUnsupportedLength is returned for ciphertext whose length matches
	// none of the known encodings. It wraps ErrDecrypt.
	ErrUnsupportedLength = fmt.Errorf("%w: unsupported ciphertext length", ErrDecrypt)

	// ErrBadPadding is returned when PKCS7 padding validation fails after
	// block decryption. It wraps ErrDecrypt.
	ErrBadPadding = fmt.Errorf("%w: invalid padding", ErrDecrypt)
)
