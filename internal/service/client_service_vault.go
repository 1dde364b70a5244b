package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientVaultService struct {
	serverAdapter adapter.ServerAdapter
	vaultCache    store.VaultCache
	keyChain      crypto.KeyChain

	logger *logger.Logger
}

// NewClientVaultService constructs the default [ClientVaultService].
func NewClientVaultService(vaultCache store.VaultCache, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		serverAdapter: serverAdapter,
		vaultCache:    vaultCache,
		keyChain:      keyChain,
		logger:        logger,
	}
}

// FetchVault implements [ClientVaultService].
func (s *clientVaultService) FetchVault(ctx context.Context, creds models.Credentials) (*vault.Vault, error) {
	log := &logger.Logger{Logger: s.logger.With().Str("op", "fetch_vault").Logger()}
	ctx = log.WithContext(ctx)

	iterations, err := s.serverAdapter.Iterations(ctx, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchVault, mapAdapterError(err))
	}
	if iterations < crypto.MinIterations {
		return nil, fmt.Errorf("%w: %w: service published %d", ErrFetchVault, crypto.ErrInvalidIterations, iterations)
	}

	authHash, err := s.keyChain.AuthHash(creds.Username, creds.Password, iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: auth hash: %w", ErrFetchVault, err)
	}

	sessionID, err := s.serverAdapter.Login(ctx, creds.Username, authHash, iterations)
	if err != nil {
		log.Info().Err(err).Msg("login failed")
		return nil, fmt.Errorf("%w: %w", ErrFetchVault, mapAdapterError(err))
	}

	raw, err := s.serverAdapter.Accounts(ctx, sessionID)
	s.logout(ctx, log, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchVault, mapAdapterError(err))
	}

	v, err := vault.New(s.keyChain, raw, creds.Username, iterations)
	if err != nil {
		log.Err(err).Int("bytes", len(raw)).Msg("failed to parse downloaded vault")
		return nil, fmt.Errorf("%w: %w", ErrFetchVault, err)
	}

	log.Info().Int("accounts", v.Len()).Msg("vault fetched")
	return v, nil
}

func (s *clientVaultService) logout(ctx context.Context, log *logger.Logger, sessionID models.SessionID) {
	if err := s.serverAdapter.Logout(ctx, sessionID); err != nil {
		log.Warn().Err(err).Msg("logout failed, session left to expire")
	}
}

// OpenVault implements [ClientVaultService].
func (s *clientVaultService) OpenVault(v *vault.Vault, password string) (map[string]models.Account, error) {
	accounts, err := v.Open(password)
	if err != nil {
		s.logger.Debug().Err(err).Msg("failed to open vault")
		return nil, fmt.Errorf("%w: %w", ErrOpenVault, err)
	}

	return accounts, nil
}

// LoadCachedVault implements [ClientVaultService].
func (s *clientVaultService) LoadCachedVault(ctx context.Context) (*vault.Vault, bool) {
	rec, err := s.vaultCache.Read(ctx)
	if errors.Is(err, store.ErrCacheNotFound) {
		s.logger.Debug().Msg("no cached vault")
		return nil, false
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("ignoring unreadable vault cache")
		return nil, false
	}

	v, err := vault.FromRecord(s.keyChain, rec)
	if err != nil {
		s.logger.Warn().Err(err).Msg("ignoring invalid cached vault")
		return nil, false
	}

	s.logger.Debug().Int("accounts", v.Len()).Msg("loaded cached vault")
	return v, true
}

// SaveVault implements [ClientVaultService].
func (s *clientVaultService) SaveVault(ctx context.Context, v *vault.Vault) error {
	if err := s.vaultCache.Write(ctx, v.Record()); err != nil {
		s.logger.Err(err).Msg("failed to save vault")
		return fmt.Errorf("%w: %w", ErrSaveVault, err)
	}

	s.logger.Debug().Int("accounts", v.Len()).Msg("vault saved")
	return nil
}

// ClearCache implements [ClientVaultService].
func (s *clientVaultService) ClearCache(ctx context.Context) error {
	if err := s.vaultCache.Clear(ctx); err != nil {
		return fmt.Errorf("clear vault cache: %w", err)
	}
	return nil
}
