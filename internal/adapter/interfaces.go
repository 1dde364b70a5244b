// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// vault service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) of the LastPass-compatible endpoints.
//
// Transport failures and non-2xx responses are reported as [ErrNetwork],
// rejected credentials as [*AuthenticationError] (matching
// [ErrAuthentication]) and unparseable responses as [ErrProtocol], so that
// callers can use [errors.Is] and [errors.As] for error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote vault service. The
// calls of one login sequence are strictly ordered: Iterations, Login,
// Accounts, Logout. The session id is passed explicitly and never stored by
// the adapter.
type ServerAdapter interface {
	// Iterations returns the key derivation work factor published for
	// username.
	Iterations(ctx context.Context, username string) (int, error)

	// Login authenticates with the pre-computed auth hash and returns a
	// session id. Rejected credentials produce an [*AuthenticationError].
	Login(ctx context.Context, username, authHash string, iterations int) (models.SessionID, error)

	// Accounts downloads the raw encrypted vault blob of the session.
	Accounts(ctx context.Context, sessionID models.SessionID) ([]byte, error)

	// Logout ends the session.
	Logout(ctx context.Context, sessionID models.SessionID) error
}
