// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyLen is the length of the derived vault key (AES-256).
	KeyLen = 32

	// MinIterations is the smallest iteration count accepted by DeriveKey.
	MinIterations = 2

	// cbcMarker prefixes fields encrypted in CBC mode.
	cbcMarker = '!'
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	keyLen int
}

// NewKeyChain constructs a [KeyChain] producing AES-256 keys.
func NewKeyChain() KeyChain {
	return &keyChain{keyLen: KeyLen}
}

// DeriveKey implements [KeyChain]. It runs PBKDF2-HMAC-SHA256 with the
// password as key material and the username as salt.
func (k *keyChain) DeriveKey(username, password string, iterations int) ([]byte, error) {
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	return pbkdf2.Key([]byte(password), []byte(username), iterations, k.keyLen, sha256.New), nil
}

// AuthHash implements [KeyChain]. The derived key is fed back into a single
// PBKDF2 round salted with the password, so the value sent to the server
// cannot be used to decrypt the vault.
func (k *keyChain) AuthHash(username, password string, iterations int) (string, error) {
	key, err := k.DeriveKey(username, password, iterations)
	if err != nil {
		return "", err
	}
	defer Zero(key)

	return hex.EncodeToString(pbkdf2.Key(key, []byte(password), 1, k.keyLen, sha256.New)), nil
}

// Decrypt implements [KeyChain].
func (k *keyChain) Decrypt(data, key []byte) (string, error) {
	enc, err := classify(data)
	if err != nil {
		return "", err
	}
	if enc.kind == encodingEmpty {
		return "", nil
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %v", ErrDecrypt, err)
	}

	plain := make([]byte, len(enc.body))
	switch enc.kind {
	case encodingECB:
		bs := block.BlockSize()
		for i := 0; i < len(enc.body); i += bs {
			block.Decrypt(plain[i:i+bs], enc.body[i:i+bs])
		}
	case encodingCBC:
		cipher.NewCBCDecrypter(block, enc.iv).CryptBlocks(plain, enc.body)
	}

	plain, err = unpadPKCS7(plain, aes.BlockSize)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecrypt)
	}

	return string(plain), nil
}

// unpadPKCS7 validates and strips PKCS7 padding. The whole padding run is
// checked so a wrong key is rejected instead of yielding truncated garbage.
func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrBadPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrBadPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrBadPadding
		}
	}

	return data[:len(data)-n], nil
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
