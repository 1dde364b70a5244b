package store

import (
	"fmt"
	"math"

	"github.com/MKhiriev/go-pass-vault/internal/chunk"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Envelope chunk tags. The header chunk comes first; the others may appear in
// any order and unknown tags are skipped.
const (
	tagHeader     = "VCHD"
	tagUsername   = "USER"
	tagIterations = "ITER"
	tagBlob       = "BLOB"

	envelopeVersion = 1
)

// EncodeEnvelope serializes rec as
// VCHD(version) | USER(username) | ITER(uint32) | BLOB(raw) | ENDM.
func EncodeEnvelope(rec models.VaultRecord) ([]byte, error) {
	if rec.Iterations <= 0 || uint64(rec.Iterations) > math.MaxUint32 {
		return nil, fmt.Errorf("encode envelope: iterations %d out of range", rec.Iterations)
	}

	return chunk.NewWriter().
		Uint32(tagHeader, envelopeVersion).
		Chunk(tagUsername, []byte(rec.Username)).
		Uint32(tagIterations, uint32(rec.Iterations)).
		Chunk(tagBlob, rec.Raw).
		End().
		Bytes()
}

// DecodeEnvelope is the inverse of EncodeEnvelope. Every failure matches
// ErrCacheCorrupted. The returned record does not alias data.
func DecodeEnvelope(data []byte) (models.VaultRecord, error) {
	var rec models.VaultRecord
	seen := make(map[string]bool, 4)

	err := chunk.Each(data, func(c chunk.Chunk) error {
		if len(seen) == 0 && c.Tag != tagHeader {
			return fmt.Errorf("missing %s header, got %q", tagHeader, c.Tag)
		}

		switch c.Tag {
		case tagHeader:
			v, err := c.Uint32()
			if err != nil {
				return err
			}
			if v != envelopeVersion {
				return fmt.Errorf("unsupported envelope version %d", v)
			}
		case tagUsername:
			rec.Username = string(c.Payload)
		case tagIterations:
			v, err := c.Uint32()
			if err != nil {
				return err
			}
			rec.Iterations = int(v)
		case tagBlob:
			rec.Raw = append(make([]byte, 0, len(c.Payload)), c.Payload...)
		default:
			return nil
		}
		seen[c.Tag] = true
		return nil
	})
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrCacheCorrupted, err)
	}

	for _, tag := range []string{tagUsername, tagIterations, tagBlob} {
		if !seen[tag] {
			return models.VaultRecord{}, fmt.Errorf("%w: missing %s chunk", ErrCacheCorrupted, tag)
		}
	}

	return rec, nil
}
