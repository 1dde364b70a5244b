package chunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Writer builds a chunk stream in memory. The first error is sticky: once a
// call fails every later call is a no-op and Bytes returns that error.
type Writer struct {
	buf bytes.Buffer
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Chunk appends a chunk with the given tag and payload.
func (w *Writer) Chunk(tag string, payload []byte) *Writer {
	if w.err != nil {
		return w
	}
	if len(tag) != TagLen {
		w.err = fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		return w
	}
	if uint64(len(payload)) > math.MaxUint32 {
		w.err = fmt.Errorf("chunk %q payload too large: %d bytes", tag, len(payload))
		return w
	}

	w.buf.WriteString(tag)
	w.writeLen(len(payload))
	w.buf.Write(payload)
	return w
}

// Fields appends a chunk whose payload is the given length-prefixed fields.
func (w *Writer) Fields(tag string, fields ...[]byte) *Writer {
	return w.Chunk(tag, EncodeFields(fields...))
}

// Uint32 appends a chunk holding a single big-endian uint32.
func (w *Writer) Uint32(tag string, v uint32) *Writer {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.Chunk(tag, b[:])
}

// End appends the end marker with an empty payload.
func (w *Writer) End() *Writer {
	return w.Chunk(TagEnd, nil)
}

// Bytes returns the encoded stream.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return bytes.Clone(w.buf.Bytes()), nil
}

func (w *Writer) writeLen(n int) {
	var b [LenSize]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	w.buf.Write(b[:])
}

// EncodeFields concatenates fields, each prefixed with its uint32 BE length.
func EncodeFields(fields ...[]byte) []byte {
	size := 0
	for _, f := range fields {
		size += LenSize + len(f)
	}

	out := make([]byte, 0, size)
	for _, f := range fields {
		out = binary.BigEndian.AppendUint32(out, uint32(len(f)))
		out = append(out, f...)
	}
	return out
}
