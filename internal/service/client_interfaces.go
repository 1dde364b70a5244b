// Package service orchestrates the vault client: the login sequence against
// the remote service, building a [vault.Vault], and keeping the local cache
// up to date.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientVaultService defines the client-side contract for obtaining and
// persisting vaults. None of its methods retain the password.
type ClientVaultService interface {
	// FetchVault runs the full remote sequence for creds: iterations, login,
	// accounts download and logout. A failed logout is logged and does not
	// fail the call. Nothing is decrypted.
	FetchVault(ctx context.Context, creds models.Credentials) (*vault.Vault, error)

	// OpenVault decrypts every account of v with password.
	OpenVault(v *vault.Vault, password string) (map[string]models.Account, error)

	// LoadCachedVault returns the cached vault, or false when there is none
	// or it cannot be decoded. The reason is logged.
	LoadCachedVault(ctx context.Context) (*vault.Vault, bool)

	// SaveVault writes v to the cache, replacing the previous one.
	SaveVault(ctx context.Context, v *vault.Vault) error

	// ClearCache drops the cached vault.
	ClearCache(ctx context.Context) error
}

// ClientCacheJob persists vaults on a background goroutine so that a slow
// disk never delays the caller.
type ClientCacheJob interface {
	// Start launches the background writer. Any previously running job is
	// stopped first.
	Start(ctx context.Context)

	// Enqueue schedules v to be saved. Only the newest pending vault is kept.
	Enqueue(v *vault.Vault)

	// Stop saves the pending vault, if any, and blocks until the background
	// goroutine has exited.
	Stop()
}
