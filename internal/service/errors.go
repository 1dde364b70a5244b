package service

import "errors"

var (
	// ErrFetchVault wraps every failure of ClientVaultService.FetchVault.
	ErrFetchVault = errors.New("fetch vault")
	// ErrOpenVault wraps every failure of ClientVaultService.OpenVault.
	ErrOpenVault = errors.New("open vault")
	// ErrSaveVault wraps every failure of ClientVaultService.SaveVault.
	ErrSaveVault = errors.New("save vault")

	ErrServiceUnavailable = errors.New("vault service unavailable")
	ErrLoginRejected      = errors.New("login rejected")
	ErrUnexpectedResponse = errors.New("unexpected response from vault service")
)
