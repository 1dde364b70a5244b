package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrFieldOverrun is returned when a length-prefixed field extends past the
// end of the payload it is read from.
var ErrFieldOverrun = errors.New("field overruns chunk payload")

// FieldReader reads length-prefixed fields (uint32 BE length + bytes) from a
// single chunk payload. It never reads outside that payload.
type FieldReader struct {
	payload []byte
	pos     int
	index   int
}

// NewFieldReader returns a FieldReader over payload.
func NewFieldReader(payload []byte) *FieldReader {
	return &FieldReader{payload: payload}
}

// Bytes returns the next field. The returned slice aliases the payload.
func (f *FieldReader) Bytes() ([]byte, error) {
	idx := f.index
	f.index++

	if len(f.payload)-f.pos < LenSize {
		return nil, fmt.Errorf("%w: field %d length prefix", ErrFieldOverrun, idx)
	}
	size := binary.BigEndian.Uint32(f.payload[f.pos:])
	f.pos += LenSize

	remain := len(f.payload) - f.pos
	if uint64(size) > uint64(remain) {
		return nil, fmt.Errorf("%w: field %d declares %d bytes, %d remain", ErrFieldOverrun, idx, size, remain)
	}
	n := int(size)
	v := f.payload[f.pos : f.pos+n : f.pos+n]
	f.pos += n
	return v, nil
}

// String returns the next field interpreted as UTF-8 text.
func (f *FieldReader) String() (string, error) {
	b, err := f.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip discards the next n fields.
func (f *FieldReader) Skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := f.Bytes(); err != nil {
			return err
		}
	}
	return nil
}
