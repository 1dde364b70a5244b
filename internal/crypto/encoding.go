package crypto

import (
	"crypto/aes"
	"fmt"
)

type encodingKind int

const (
	encodingEmpty encodingKind = iota
	encodingECB
	encodingCBC
)

// encoding is the decoded shape of a vault field: which block mode to use,
// the IV for CBC, and the ciphertext proper.
type encoding struct {
	kind encodingKind
	iv   []byte
	body []byte
}

// classify decides the encoding of data from its length alone:
//
//	0              -> empty, nothing to decrypt
//	16k            -> ECB over the whole buffer
//	16k+1, '!'     -> CBC, data[1:17] is the IV
func classify(data []byte) (encoding, error) {
	n := len(data)
	switch {
	case n == 0:
		return encoding{kind: encodingEmpty}, nil
	case n%aes.BlockSize == 0:
		return encoding{kind: encodingECB, body: data}, nil
	case n > aes.BlockSize && n%aes.BlockSize == 1 && data[0] == cbcMarker:
		return encoding{
			kind: encodingCBC,
			iv:   data[1 : 1+aes.BlockSize],
			body: data[1+aes.BlockSize:],
		}, nil
	default:
		return encoding{}, fmt.Errorf("%w: %d bytes", ErrUnsupportedLength, n)
	}
}
