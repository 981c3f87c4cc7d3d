package xcproof

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/notary-mesh/xcproof/merkle"
)

// cborEncMode and cborDecMode are configured once at package init:
// canonical encoding so the same payload always serializes to the same
// bytes, and a decode mode that rejects duplicate map keys.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	encOpts := cbor.CanonicalEncOptions()
	var err error
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("xcproof: building CBOR encode mode: %v", err))
	}

	decOpts := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("xcproof: building CBOR decode mode: %v", err))
	}
}

// notarisationPayloadWire is the integer-keyed wire shape of
// NotarisationPayload; H256 fields encode as 32 raw bytes.
type notarisationPayloadWire struct {
	Symbol   string      `cbor:"1,keyasint"`
	MoM      merkle.H256 `cbor:"2,keyasint"`
	MoMDepth uint32      `cbor:"3,keyasint"`
	Height   uint32      `cbor:"4,keyasint"`
	CCId     uint32      `cbor:"5,keyasint"`
	TxHash   merkle.H256 `cbor:"6,keyasint"`
}

const maxSymbolLen = 64

// MarshalCBOR encodes p in its canonical wire form.
func (p NotarisationPayload) MarshalCBOR() ([]byte, error) {
	if len(p.Symbol) > maxSymbolLen {
		return nil, fmt.Errorf("xcproof: %w: symbol %q exceeds %d bytes", ErrMalformed, p.Symbol, maxSymbolLen)
	}
	return cborEncMode.Marshal(notarisationPayloadWire{
		Symbol:   p.Symbol,
		MoM:      p.MoM,
		MoMDepth: p.MoMDepth,
		Height:   p.Height,
		CCId:     p.CCId,
		TxHash:   p.TxHash,
	})
}

// UnmarshalCBOR decodes data into p.
func (p *NotarisationPayload) UnmarshalCBOR(data []byte) error {
	var w notarisationPayloadWire
	if err := cborDecMode.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("xcproof: %w: %v", ErrMalformed, err)
	}
	if len(w.Symbol) > maxSymbolLen {
		return fmt.Errorf("xcproof: %w: symbol %q exceeds %d bytes", ErrMalformed, w.Symbol, maxSymbolLen)
	}
	*p = NotarisationPayload{
		Symbol:   w.Symbol,
		MoM:      w.MoM,
		MoMDepth: w.MoMDepth,
		Height:   w.Height,
		CCId:     w.CCId,
		TxHash:   w.TxHash,
	}
	return nil
}
