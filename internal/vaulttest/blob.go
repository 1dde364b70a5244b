// Package vaulttest provides test doubles for the remote vault service: a
// builder for binary vault blobs, field encryption helpers, and an
// httptest-backed fake of the login/accounts/logout endpoints.
package vaulttest

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/chunk"
)

// Account is a plaintext account to be encrypted into a blob.
type Account struct {
	ID       string
	Name     string
	Username string
	Password string
	URL      string

	// CBC selects "!" || IV || AES-CBC encoding instead of AES-ECB.
	CBC bool
}

// EncryptECB pads plain with PKCS7 and encrypts it with AES-ECB. It panics on
// an invalid key size.
func EncryptECB(plain, key []byte) []byte {
	block := mustCipher(key)
	padded := pad(plain)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		block.Encrypt(out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}
	return out
}

// EncryptCBC pads plain with PKCS7, encrypts it with AES-CBC and returns
// "!" || iv || ciphertext. A random IV is used when iv is nil.
func EncryptCBC(plain, key, iv []byte) []byte {
	if iv == nil {
		iv = make([]byte, aes.BlockSize)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			panic(err)
		}
	}
	block := mustCipher(key)
	padded := pad(plain)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	blob := make([]byte, 0, 1+len(iv)+len(out))
	blob = append(blob, '!')
	blob = append(blob, iv...)
	return append(blob, out...)
}

func mustCipher(key []byte) cipher.Block {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	return block
}

func pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

// BlobBuilder assembles a vault blob chunk by chunk.
type BlobBuilder struct {
	w *chunk.Writer
}

// NewBlobBuilder returns a builder whose stream starts with a version chunk,
// as the real service does.
func NewBlobBuilder() *BlobBuilder {
	return &BlobBuilder{w: chunk.NewWriter().Chunk("LPAV", []byte("137"))}
}

// Chunk appends an arbitrary chunk.
func (b *BlobBuilder) Chunk(tag string, payload []byte) *BlobBuilder {
	b.w.Chunk(tag, payload)
	return b
}

// RawAccount appends an ACCT chunk with the given ciphertexts. extra fields
// are appended after the password, where real blobs carry a few dozen more.
func (b *BlobBuilder) RawAccount(id string, name, username, password []byte, extra ...[]byte) *BlobBuilder {
	fields := [][]byte{
		[]byte(id),
		name,
		nil,         // group
		nil,         // url
		nil,         // notes
		[]byte("0"), // favourite
		nil,         // shared from id
		username,
		password,
	}
	b.w.Fields("ACCT", append(fields, extra...)...)
	return b
}

// Account encrypts a with key and appends it as an ACCT chunk.
func (b *BlobBuilder) Account(key []byte, a Account) *BlobBuilder {
	enc := func(s string) []byte {
		if s == "" {
			return nil
		}
		if a.CBC {
			return EncryptCBC([]byte(s), key, nil)
		}
		return EncryptECB([]byte(s), key)
	}

	return b.RawAccount(a.ID, enc(a.Name), enc(a.Username), enc(a.Password),
		[]byte(hex.EncodeToString([]byte(a.URL))), []byte("trailing"))
}

// End appends the end marker.
func (b *BlobBuilder) End() *BlobBuilder {
	b.w.End()
	return b
}

// Bytes returns the blob. It panics if any chunk was invalid.
func (b *BlobBuilder) Bytes() []byte {
	raw, err := b.w.Bytes()
	if err != nil {
		panic(err)
	}
	return raw
}
