// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// EncryptedAccount is a single ACCT record decoded from the vault blob.
// Only the fields needed to present and use a credential are kept; the
// remaining encrypted fields (group, url, notes, ...) are skipped by the
// parser. All byte slices hold ciphertext exactly as it appeared in the blob.
type EncryptedAccount struct {
	// ID is the server-side identifier of the record (plain text).
	ID string

	// EncryptedName is the encrypted display name of the account.
	EncryptedName []byte

	// EncryptedUsername is the encrypted login stored for the account.
	EncryptedUsername []byte

	// EncryptedPassword is the encrypted password stored for the account.
	EncryptedPassword []byte
}

// Account is a decrypted credential. It only exists as the result of
// opening a vault and must never be persisted.
type Account struct {
	Name     string
	Username string
	Password string
}

// DisplayName returns "name (username)" or just the name when the account has
// no username.
func (a Account) DisplayName() string {
	if a.Username == "" {
		return a.Name
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.Username)
}

// String implements fmt.Stringer without leaking the password.
func (a Account) String() string {
	return fmt.Sprintf("Account[%s]", a.Name)
}
