// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package chunk implements the tag-length-value framing shared by the vault
// blob and the local cache envelope.
//
// A stream is a flat sequence of chunks:
//
//	tag (4 ASCII bytes) | length (uint32, big-endian) | payload (length bytes)
//
// terminated by a chunk tagged [TagEnd]. Readers never need to understand a
// tag in order to skip it, which keeps old clients compatible with new
// streams.
package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// TagLen is the size of a chunk tag in bytes.
	TagLen = 4

	// LenSize is the size of every length prefix in bytes.
	LenSize = 4

	// TagEnd marks the end of a stream.
	TagEnd = "ENDM"
)

var (
	// ErrTruncatedData is returned when the buffer ends before the end
	// marker, or a chunk claims more bytes than remain.
	ErrTruncatedData = errors.New("truncated chunk data")

	// ErrInvalidTag is returned by the writer for tags that are not exactly
	// four bytes long.
	ErrInvalidTag = errors.New("chunk tag must be 4 bytes")

	// ErrInvalidPayload is returned when a payload does not have the size
	// its type requires.
	ErrInvalidPayload = errors.New("invalid chunk payload")
)

// Chunk is a single framed unit. Payload aliases the reader's buffer.
type Chunk struct {
	Tag     string
	Payload []byte

	// Offset is the position of the tag within the stream.
	Offset int
}

// Uint32 returns the payload as a big-endian uint32, the counterpart of
// Writer.Uint32. The payload must be exactly four bytes long.
func (c Chunk) Uint32() (uint32, error) {
	if len(c.Payload) != LenSize {
		return 0, fmt.Errorf("%w: %s chunk: want 4 bytes, got %d", ErrInvalidPayload, c.Tag, len(c.Payload))
	}
	return binary.BigEndian.Uint32(c.Payload), nil
}

// Reader walks a chunk stream held in memory.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Next returns the next chunk. It returns ok == false once the end marker has
// been read; the end marker's length and payload, if present, are ignored.
// The position after a successful call is always the chunk's recorded end
// (payload start + length), independent of how the caller consumes Payload.
func (r *Reader) Next() (c Chunk, ok bool, err error) {
	start := r.pos
	if len(r.buf)-r.pos < TagLen {
		return Chunk{}, false, fmt.Errorf("%w: no end marker at offset %d", ErrTruncatedData, r.pos)
	}
	tag := string(r.buf[r.pos : r.pos+TagLen])
	r.pos += TagLen

	if tag == TagEnd {
		return Chunk{Tag: tag, Offset: start}, false, nil
	}

	size, err := r.readLen()
	if err != nil {
		return Chunk{}, false, fmt.Errorf("chunk %q at offset %d: %w", tag, start, err)
	}

	payloadStart := r.pos
	remain := len(r.buf) - payloadStart
	if uint64(size) > uint64(remain) {
		return Chunk{}, false, fmt.Errorf("%w: chunk %q at offset %d declares %d bytes, %d remain",
			ErrTruncatedData, tag, start, size, remain)
	}
	end := payloadStart + int(size)
	r.pos = end

	return Chunk{Tag: tag, Payload: r.buf[payloadStart:end:end], Offset: start}, true, nil
}

// readLen returns the raw length prefix. It is kept as uint32 so that the
// bounds check cannot be defeated by int overflow on 32-bit platforms.
func (r *Reader) readLen() (uint32, error) {
	if len(r.buf)-r.pos < LenSize {
		return 0, fmt.Errorf("%w: length prefix", ErrTruncatedData)
	}
	n := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += LenSize
	return n, nil
}

// Each calls fn for every chunk until the end marker. It stops at the first
// error returned by the reader or by fn.
func Each(buf []byte, fn func(Chunk) error) error {
	r := NewReader(buf)
	for {
		c, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err = fn(c); err != nil {
			return err
		}
	}
}
