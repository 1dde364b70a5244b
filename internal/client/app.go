package client

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// App is the terminal client.
type App struct {
	services  *service.ClientServices
	prompter  platform.Prompter
	clipboard platform.Clipboard
	cfg       config.ClientApp
	out       io.Writer

	logger *logger.Logger
}

// NewApp wires an App. out receives everything shown to the user.
func NewApp(services *service.ClientServices, prompter platform.Prompter, clipboard platform.Clipboard,
	cfg config.ClientApp, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.VaultService == nil || services.CacheJob == nil || prompter == nil || clipboard == nil {
		return nil, ErrNilDependency
	}

	return &App{
		services:  services,
		prompter:  prompter,
		clipboard: clipboard,
		cfg:       cfg,
		out:       out,
		logger:    logger,
	}, nil
}

// Run implements Client.
func (a *App) Run(ctx context.Context) error {
	a.services.CacheJob.Start(ctx)
	defer a.services.CacheJob.Stop()

	accounts, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Account == "" {
		a.list(accounts)
		return nil
	}

	account, ok := accounts[a.cfg.Account]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, a.cfg.Account)
	}
	return a.copyPassword(ctx, account)
}

// unlock returns the opened vault, prompting for the password at most
// cfg.MaxAttempts times.
func (a *App) unlock(ctx context.Context) (map[string]models.Account, error) {
	cached := a.cachedVault(ctx)
	username := a.cfg.Username

	prompt := "Master password: "
	for attempt := 1; attempt <= a.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if cached == nil && username == "" {
			var err error
			if username, err = a.prompter.ReadLine("Username: "); err != nil {
				return nil, err
			}
		}

		password, err := a.prompter.ReadPassword(prompt)
		if err != nil {
			return nil, err
		}

		var accounts map[string]models.Account
		if cached != nil {
			accounts, err = a.services.VaultService.OpenVault(cached, password)
		} else {
			accounts, err = a.fetchAndOpen(ctx, models.Credentials{Username: username, Password: password})
		}

		switch {
		case err == nil:
			return accounts, nil
		case errors.Is(err, crypto.ErrDecrypt):
			prompt = "Invalid password? Master password: "
		case errors.Is(err, service.ErrLoginRejected):
			a.logger.Info().Int("attempt", attempt).Msg("login rejected")
			fmt.Fprintf(a.out, "Login failed: %s\n", rejectionMessage(err))
		default:
			return nil, err
		}
	}

	return nil, ErrTooManyAttempts
}

func rejectionMessage(err error) string {
	var authErr *adapter.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return adapter.DefaultAuthErrorMessage
}

func (a *App) cachedVault(ctx context.Context) *vault.Vault {
	if a.cfg.Refresh {
		if err := a.services.VaultService.ClearCache(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("failed to clear vault cache")
		}
		return nil
	}

	cached, ok := a.services.VaultService.LoadCachedVault(ctx)
	if !ok {
		return nil
	}
	if a.cfg.Username != "" && cached.Username() != a.cfg.Username {
		a.logger.Info().Msg("cached vault belongs to another user, fetching")
		return nil
	}

	fmt.Fprintf(a.out, "Using cached vault for %s (%d accounts)\n", cached.Username(), cached.Len())
	return cached
}

func (a *App) fetchAndOpen(ctx context.Context, creds models.Credentials) (map[string]models.Account, error) {
	v, err := a.services.VaultService.FetchVault(ctx, creds)
	if err != nil {
		return nil, err
	}
	a.services.CacheJob.Enqueue(v)

	return a.services.VaultService.OpenVault(v, creds.Password)
}

func (a *App) list(accounts map[string]models.Account) {
	sorted := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		sorted = append(sorted, account)
	}
	slices.SortFunc(sorted, func(x, y models.Account) int {
		return cmp.Compare(x.Name, y.Name)
	})

	for _, account := range sorted {
		fmt.Fprintln(a.out, account.DisplayName())
	}
}

// copyPassword puts the password on the clipboard and, unless the TTL is
// zero, blocks until the TTL expires or ctx is cancelled, then clears it.
func (a *App) copyPassword(ctx context.Context, account models.Account) error {
	if err := a.clipboard.Set(account.Password); err != nil {
		return err
	}

	if a.cfg.ClipboardTTL <= 0 {
		fmt.Fprintf(a.out, "Password for %s copied to clipboard\n", account.DisplayName())
		return nil
	}

	fmt.Fprintf(a.out, "Password for %s copied to clipboard, clearing in %s\n", account.DisplayName(), a.cfg.ClipboardTTL)

	timer := time.NewTimer(a.cfg.ClipboardTTL)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	if err := a.clipboard.Clear(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to clear clipboard")
		return err
	}
	fmt.Fprintln(a.out, "Clipboard cleared")
	return nil
}
