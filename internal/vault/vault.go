// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds a fetched or cached vault and decrypts it on demand.
//
// A [Vault] is immutable: it owns the username, the iteration count and the
// raw blob it was built from, plus the encrypted records parsed out of that
// blob. It never stores a password or a key, so the same value can be opened
// any number of times.
package vault

import (
	"bytes"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/parser"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Vault is an encrypted vault ready to be opened.
type Vault struct {
	username   string
	iterations int
	raw        []byte
	accounts   []models.EncryptedAccount

	keyChain crypto.KeyChain
}

// New parses raw and returns a Vault owning a private copy of it. Nothing is
// decrypted. Returns crypto.ErrInvalidIterations for iterations < 2 and a
// parser error if raw is not a well-formed blob.
func New(keyChain crypto.KeyChain, raw []byte, username string, iterations int) (*Vault, error) {
	if iterations < crypto.MinIterations {
		return nil, fmt.Errorf("%w: got %d", crypto.ErrInvalidIterations, iterations)
	}

	raw = bytes.Clone(raw)
	accounts, err := parser.ParseAccounts(raw)
	if err != nil {
		return nil, fmt.Errorf("parse vault: %w", err)
	}

	return &Vault{
		username:   username,
		iterations: iterations,
		raw:        raw,
		accounts:   accounts,
		keyChain:   keyChain,
	}, nil
}

// FromRecord is New for a [models.VaultRecord].
func FromRecord(keyChain crypto.KeyChain, rec models.VaultRecord) (*Vault, error) {
	return New(keyChain, rec.Raw, rec.Username, rec.Iterations)
}

// Open derives the key from password and decrypts every record. The result is
// keyed by decrypted account name; when two records decrypt to the same name
// the later one in the blob wins.
//
// Any failure aborts the whole call: there is no partially opened vault. A
// wrong password surfaces as an error matching crypto.ErrDecrypt.
func (v *Vault) Open(password string) (map[string]models.Account, error) {
	key, err := v.keyChain.DeriveKey(v.username, password, v.iterations)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Zero(key)

	result := make(map[string]models.Account, len(v.accounts))
	for _, enc := range v.accounts {
		account, err := v.decryptAccount(enc, key)
		if err != nil {
			return nil, err
		}
		// TODO: duplicate names silently replace earlier records; keep the
		// behaviour until product decides whether to disambiguate by id.
		result[account.Name] = account
	}

	return result, nil
}

func (v *Vault) decryptAccount(enc models.EncryptedAccount, key []byte) (models.Account, error) {
	name, err := v.keyChain.Decrypt(enc.EncryptedName, key)
	if err != nil {
		return models.Account{}, fmt.Errorf("account %s: name: %w", enc.ID, err)
	}
	username, err := v.keyChain.Decrypt(enc.EncryptedUsername, key)
	if err != nil {
		return models.Account{}, fmt.Errorf("account %s: username: %w", enc.ID, err)
	}
	password, err := v.keyChain.Decrypt(enc.EncryptedPassword, key)
	if err != nil {
		return models.Account{}, fmt.Errorf("account %s: password: %w", enc.ID, err)
	}

	return models.Account{Name: name, Username: username, Password: password}, nil
}

// Username returns the owner of the vault.
func (v *Vault) Username() string { return v.username }

// Iterations returns the key derivation work factor of the vault.
func (v *Vault) Iterations() int { return v.iterations }

// Len returns the number of encrypted account records.
func (v *Vault) Len() int { return len(v.accounts) }

// Raw returns a copy of the blob the vault was built from.
func (v *Vault) Raw() []byte { return bytes.Clone(v.raw) }

// Record returns the (username, iterations, raw blob) triple used for caching.
func (v *Vault) Record() models.VaultRecord {
	return models.VaultRecord{Username: v.username, Iterations: v.iterations, Raw: v.Raw()}
}

// String implements fmt.Stringer.
func (v *Vault) String() string {
	return fmt.Sprintf("Vault (%d accounts)", len(v.accounts))
}
