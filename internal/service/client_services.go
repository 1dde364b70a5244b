package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	VaultService ClientVaultService
	CacheJob     ClientCacheJob
}

// NewClientServices wires the services on top of the given storage and
// transport.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	vaultSvc := NewClientVaultService(storages.VaultCache, serverAdapter, crypto.NewKeyChain(), logger)

	return &ClientServices{
		VaultService: vaultSvc,
		CacheJob:     NewClientCacheJob(vaultSvc, logger),
	}
}
