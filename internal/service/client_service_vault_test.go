package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/internal/vaulttest"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	testUser       = "user@example.com"
	testPassword   = "secret123"
	testIterations = 5000
	testSession    = models.SessionID("sess-1")
)

var testCreds = models.Credentials{Username: testUser, Password: testPassword}

type serviceDeps struct {
	adapter  *mock.MockServerAdapter
	cache    *mock.MockVaultCache
	keyChain *mock.MockKeyChain
}

func newTestVaultService(t *testing.T) (ClientVaultService, serviceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := serviceDeps{
		adapter:  mock.NewMockServerAdapter(ctrl),
		cache:    mock.NewMockVaultCache(ctrl),
		keyChain: mock.NewMockKeyChain(ctrl),
	}
	return NewClientVaultService(deps.cache, deps.adapter, deps.keyChain, logger.Nop()), deps
}

func testBlob(t *testing.T) []byte {
	t.Helper()
	key, err := crypto.NewKeyChain().DeriveKey(testUser, testPassword, testIterations)
	require.NoError(t, err)
	return vaulttest.NewBlobBuilder().
		Account(key, vaulttest.Account{ID: "1234", Name: "MyAccount", Username: "alice", Password: "p@ss"}).
		End().
		Bytes()
}

func TestFetchVault_Success(t *testing.T) {
	svc, deps := newTestVaultService(t)
	blob := testBlob(t)

	gomock.InOrder(
		deps.adapter.EXPECT().Iterations(gomock.Any(), testUser).Return(testIterations, nil),
		deps.keyChain.EXPECT().AuthHash(testUser, testPassword, testIterations).Return("hash", nil),
		deps.adapter.EXPECT().Login(gomock.Any(), testUser, "hash", testIterations).Return(testSession, nil),
		deps.adapter.EXPECT().Accounts(gomock.Any(), testSession).Return(blob, nil),
		deps.adapter.EXPECT().Logout(gomock.Any(), testSession).Return(nil),
	)

	v, err := svc.FetchVault(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, testUser, v.Username())
	assert.Equal(t, testIterations, v.Iterations())
	assert.Equal(t, blob, v.Raw())
}

func TestFetchVault_LogoutFailureIsIgnored(t *testing.T) {
	svc, deps := newTestVaultService(t)

	deps.adapter.EXPECT().Iterations(gomock.Any(), testUser).Return(testIterations, nil)
	deps.keyChain.EXPECT().AuthHash(testUser, testPassword, testIterations).Return("hash", nil)
	deps.adapter.EXPECT().Login(gomock.Any(), testUser, "hash", testIterations).Return(testSession, nil)
	deps.adapter.EXPECT().Accounts(gomock.Any(), testSession).Return(testBlob(t), nil)
	deps.adapter.EXPECT().Logout(gomock.Any(), testSession).Return(adapter.ErrNetwork)

	v, err := svc.FetchVault(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
}

func TestFetchVault_AccountsFailureStillLogsOut(t *testing.T) {
	svc, deps := newTestVaultService(t)

	deps.adapter.EXPECT().Iterations(gomock.Any(), testUser).Return(testIterations, nil)
	deps.keyChain.EXPECT().AuthHash(testUser, testPassword, testIterations).Return("hash", nil)
	deps.adapter.EXPECT().Login(gomock.Any(), testUser, "hash", testIterations).Return(testSession, nil)
	deps.adapter.EXPECT().Accounts(gomock.Any(), testSession).Return(nil, adapter.ErrNetwork)
	deps.adapter.EXPECT().Logout(gomock.Any(), testSession).Return(nil)

	v, err := svc.FetchVault(context.Background(), testCreds)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrFetchVault)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
}

func TestFetchVault_LoginRejected(t *testing.T) {
	svc, deps := newTestVaultService(t)
	authErr := &adapter.AuthenticationError{Message: "Invalid username or password.", Cause: "unknownpassword"}

	deps.adapter.EXPECT().Iterations(gomock.Any(), testUser).Return(testIterations, nil)
	deps.keyChain.EXPECT().AuthHash(testUser, testPassword, testIterations).Return("hash", nil)
	deps.adapter.EXPECT().Login(gomock.Any(), testUser, "hash", testIterations).Return(models.SessionID(""), authErr)

	_, err := svc.FetchVault(context.Background(), testCreds)
	assert.ErrorIs(t, err, ErrFetchVault)
	assert.ErrorIs(t, err, ErrLoginRejected)

	var target *adapter.AuthenticationError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "unknownpassword", target.Cause)
}

func TestFetchVault_IterationsErrors(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		err        error
		wantErr    error
	}{
		{name: "network", err: adapter.ErrNetwork, wantErr: ErrServiceUnavailable},
		{name: "protocol", err: adapter.ErrProtocol, wantErr: ErrUnexpectedResponse},
		{name: "too low", iterations: 1, wantErr: crypto.ErrInvalidIterations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestVaultService(t)
			deps.adapter.EXPECT().Iterations(gomock.Any(), testUser).Return(tt.iterations, tt.err)

			_, err := svc.FetchVault(context.Background(), testCreds)
			assert.ErrorIs(t, err, ErrFetchVault)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchVault_MalformedBlob(t *testing.T) {
	svc, deps := newTestVaultService(t)

	deps.adapter.EXPECT().Iterations(gomock.Any(), testUser).Return(testIterations, nil)
	deps.keyChain.EXPECT().AuthHash(testUser, testPassword, testIterations).Return("hash", nil)
	deps.adapter.EXPECT().Login(gomock.Any(), testUser, "hash", testIterations).Return(testSession, nil)
	deps.adapter.EXPECT().Accounts(gomock.Any(), testSession).Return([]byte("ACCT"), nil)
	deps.adapter.EXPECT().Logout(gomock.Any(), testSession).Return(nil)

	_, err := svc.FetchVault(context.Background(), testCreds)
	assert.ErrorIs(t, err, ErrFetchVault)
}

func TestOpenVault(t *testing.T) {
	svc, _ := newTestVaultService(t)
	v, err := vault.New(crypto.NewKeyChain(), testBlob(t), testUser, testIterations)
	require.NoError(t, err)

	accounts, err := svc.OpenVault(v, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "p@ss", accounts["MyAccount"].Password)

	_, err = svc.OpenVault(v, "wrong")
	assert.ErrorIs(t, err, ErrOpenVault)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestLoadCachedVault(t *testing.T) {
	blob := testBlob(t)

	tests := []struct {
		name   string
		rec    models.VaultRecord
		err    error
		wantOK bool
	}{
		{name: "hit", rec: models.VaultRecord{Username: testUser, Iterations: testIterations, Raw: blob}, wantOK: true},
		{name: "miss", err: store.ErrCacheNotFound},
		{name: "corrupted", err: store.ErrCacheCorrupted},
		{name: "bad iterations", rec: models.VaultRecord{Username: testUser, Iterations: 1, Raw: blob}},
		{name: "bad blob", rec: models.VaultRecord{Username: testUser, Iterations: testIterations, Raw: []byte("junk")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestVaultService(t)
			deps.cache.EXPECT().Read(gomock.Any()).Return(tt.rec, tt.err)

			v, ok := svc.LoadCachedVault(context.Background())
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, v)
				assert.Equal(t, tt.rec, v.Record())
			} else {
				assert.Nil(t, v)
			}
		})
	}
}

func TestSaveVault(t *testing.T) {
	svc, deps := newTestVaultService(t)
	v, err := vault.New(crypto.NewKeyChain(), testBlob(t), testUser, testIterations)
	require.NoError(t, err)

	deps.cache.EXPECT().Write(gomock.Any(), v.Record()).Return(nil)
	require.NoError(t, svc.SaveVault(context.Background(), v))

	deps.cache.EXPECT().Write(gomock.Any(), v.Record()).Return(assert.AnError)
	err = svc.SaveVault(context.Background(), v)
	assert.ErrorIs(t, err, ErrSaveVault)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClearCache(t *testing.T) {
	svc, deps := newTestVaultService(t)

	deps.cache.EXPECT().Clear(gomock.Any()).Return(nil)
	require.NoError(t, svc.ClearCache(context.Background()))

	deps.cache.EXPECT().Clear(gomock.Any()).Return(assert.AnError)
	assert.ErrorIs(t, svc.ClearCache(context.Background()), assert.AnError)
}

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
	assert.ErrorIs(t, mapAdapterError(adapter.ErrAuthentication), ErrLoginRejected)
	assert.ErrorIs(t, mapAdapterError(adapter.ErrNetwork), ErrServiceUnavailable)
	assert.ErrorIs(t, mapAdapterError(adapter.ErrProtocol), ErrUnexpectedResponse)

	other := errors.New("other")
	assert.Equal(t, other, mapAdapterError(other))
}

// Runs the real adapter, key chain and file cache against the fake service.
func TestClientServices_FetchSaveLoad(t *testing.T) {
	srv := vaulttest.NewServer(t, testUser, testPassword, testIterations, testBlob(t))
	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: config.DefaultRequestTimeout,
	}, logger.Nop())
	require.NoError(t, err)

	storages, err := store.NewClientStorages(ctx, config.ClientCache{
		Backend: config.CacheBackendFile,
		Dir:     t.TempDir(),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := NewClientServices(storages, serverAdapter, logger.Nop())

	v, err := services.VaultService.FetchVault(ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, []string{
		vaulttest.PathIterations, vaulttest.PathLogin, vaulttest.PathAccounts, vaulttest.PathLogout,
	}, srv.Calls())
	assert.Zero(t, srv.ActiveSessions())

	_, ok := services.VaultService.LoadCachedVault(ctx)
	assert.False(t, ok)

	require.NoError(t, services.VaultService.SaveVault(ctx, v))

	cached, ok := services.VaultService.LoadCachedVault(ctx)
	require.True(t, ok)
	assert.Equal(t, v.Record(), cached.Record())

	accounts, err := services.VaultService.OpenVault(cached, testPassword)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Account{
		"MyAccount": {Name: "MyAccount", Username: "alice", Password: "p@ss"},
	}, accounts)

	_, err = services.VaultService.FetchVault(ctx, models.Credentials{Username: testUser, Password: "nope"})
	assert.ErrorIs(t, err, ErrLoginRejected)
}
