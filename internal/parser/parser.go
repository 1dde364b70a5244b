// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser decodes the binary vault blob returned by the accounts
// endpoint into still-encrypted account records.
//
// Only ACCT chunks are decoded. Every other chunk (shared folders, private
// keys, attachments and any tag introduced later) is skipped by its recorded
// length.
package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/chunk"
	"github.com/MKhiriev/go-pass-vault/models"
)

// TagAccount is the chunk tag of a single account record.
const TagAccount = "ACCT"

var (
	// ErrParse is returned when a recognised chunk has a malformed payload.
	ErrParse = errors.New("malformed vault data")

	// ErrTruncatedData is returned when the blob ends before the end marker.
	ErrTruncatedData = chunk.ErrTruncatedData
)

// ACCT payload field positions. Fields after accountFieldPassword are never
// read.
const (
	accountFieldID = iota
	accountFieldName
	accountFieldGroup
	accountFieldURL
	accountFieldNotes
	accountFieldFavourite
	accountFieldSharedFromID
	accountFieldUsername
	accountFieldPassword
)

// ParseAccounts decodes every ACCT chunk in raw, in stream order. The
// returned records own their byte slices and do not alias raw.
func ParseAccounts(raw []byte) ([]models.EncryptedAccount, error) {
	accounts := make([]models.EncryptedAccount, 0)

	err := chunk.Each(raw, func(c chunk.Chunk) error {
		if c.Tag != TagAccount {
			return nil
		}

		account, err := parseAccount(c.Payload)
		if err != nil {
			return fmt.Errorf("%w: %s chunk at offset %d: %w", ErrParse, c.Tag, c.Offset, err)
		}
		accounts = append(accounts, account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func parseAccount(payload []byte) (models.EncryptedAccount, error) {
	var account models.EncryptedAccount
	f := chunk.NewFieldReader(payload)

	id, err := f.String()
	if err != nil {
		return account, fmt.Errorf("id: %w", err)
	}
	account.ID = id

	name, err := f.Bytes()
	if err != nil {
		return account, fmt.Errorf("name: %w", err)
	}
	account.EncryptedName = bytes.Clone(name)

	// group, url, notes, favourite, shared-from id
	if err = f.Skip(accountFieldUsername - accountFieldGroup); err != nil {
		return account, err
	}

	username, err := f.Bytes()
	if err != nil {
		return account, fmt.Errorf("username: %w", err)
	}
	account.EncryptedUsername = bytes.Clone(username)

	password, err := f.Bytes()
	if err != nil {
		return account, fmt.Errorf("password: %w", err)
	}
	account.EncryptedPassword = bytes.Clone(password)

	return account, nil
}
