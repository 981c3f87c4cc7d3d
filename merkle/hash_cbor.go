package merkle

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes h as a CBOR byte string of exactly 32 bytes.
func (h H256) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(h[:])
}

// UnmarshalCBOR decodes a 32-byte CBOR byte string into h.
func (h *H256) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("h256: %w", err)
	}
	if len(b) != len(*h) {
		return fmt.Errorf("h256: expected %d bytes, got %d", len(*h), len(b))
	}
	copy(h[:], b)
	return nil
}
