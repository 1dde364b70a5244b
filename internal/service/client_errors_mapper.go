// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

// mapAdapterError tags the adapter's transport error with a service business
// error. The original error stays in the chain so callers can still use
// errors.As for *adapter.AuthenticationError.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrAuthentication):
		return fmt.Errorf("%w: %w", ErrLoginRejected, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	case errors.Is(err, adapter.ErrProtocol):
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return err
}
