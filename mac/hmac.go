package mac

import (
	"hash"
	"io"

	"github.com/absfs/gogost/internal/mask"
	"github.com/absfs/gogost/internal/streebog"
)

const (
	ipad = 0x36
	opad = 0x5C
)

// HMACKey is the SecretKey of spec section 3's "HMAC/NMAC key": a masked
// key of length equal to the underlying hash's compression block size
// (64 bytes for Streebog), counted by invocation rather than block.
type HMACKey struct {
	mask.Key
	innerNew func() hash.Hash
	outerNew func() hash.Hash
}

// NewHMACKey builds an unset HMAC key bound to inner (the hash that
// covers the message) and outer (the hash used for the final
// compression; equal to inner for plain HMAC, Streebog-256 for the
// nmac-streebog variant per spec section 4.7).
func NewHMACKey(innerNew, outerNew func() hash.Hash, budget int64, rng io.Reader) *HMACKey {
	k := &HMACKey{innerNew: innerNew, outerNew: outerNew}
	k.Key = *mask.New(streebog.BlockSize, mask.InvocationResource, budget, rng)
	return k
}

// NewHMACStreebog256Key builds a standard HMAC-Streebog-256 key.
func NewHMACStreebog256Key(budget int64, rng io.Reader) *HMACKey {
	return NewHMACKey(streebog.New256, streebog.New256, budget, rng)
}

// NewHMACStreebog512Key builds a standard HMAC-Streebog-512 key.
func NewHMACStreebog512Key(budget int64, rng io.Reader) *HMACKey {
	return NewHMACKey(streebog.New512, streebog.New512, budget, rng)
}

// NewNMACStreebogKey builds the nmac-streebog key: inner compression uses
// Streebog-512, the outer (final) compression uses Streebog-256,
// producing a 256-bit tag.
func NewNMACStreebogKey(budget int64, rng io.Reader) *HMACKey {
	return NewHMACKey(streebog.New512, streebog.New256, budget, rng)
}

// SetKey assigns raw key material of arbitrary length, reducing it via
// the inner hash if it exceeds the compression block size, zero-padding
// otherwise; Compute uses the stored K' as it is. This follows spec
// section 4.7's SecretKey object whose stored material is already the
// reduced, block-sized K'.
func (k *HMACKey) SetKey(material []byte) error {
	padded := padKey(k.innerNew, material)
	return k.Key.SetKey(padded)
}

func padKey(innerNew func() hash.Hash, material []byte) []byte {
	bs := streebog.BlockSize
	out := make([]byte, bs)
	if len(material) <= bs {
		copy(out, material)
		return out
	}
	h := innerNew()
	h.Write(material)
	digest := h.Sum(nil)
	copy(out, digest)
	return out
}

// Compute runs one HMAC/NMAC invocation: it validates the integrity
// code, unmasks K' for the duration of the computation, decrements the
// invocation resource, and re-masks before returning (spec section 4.7's
// clean/finalize prologue/epilogue, collapsed into a single call since
// this module has no reason to expose a separate streaming HMAC
// interface beyond the generic Aggregator already used by CMAC).
func (k *HMACKey) Compute(msg []byte) ([]byte, error) {
	if err := k.Resource.Use(1); err != nil {
		return nil, err
	}
	var out []byte
	err := k.WithUnmasked(func(kpad []byte) error {
		out = hmacCompute(k.innerNew, k.outerNew, kpad, msg)
		return nil
	})
	return out, err
}

func hmacCompute(innerNew, outerNew func() hash.Hash, kpad, msg []byte) []byte {
	inner := xorPad(kpad, ipad)
	ih := innerNew()
	ih.Write(inner)
	ih.Write(msg)
	innerDigest := ih.Sum(nil)

	outerPad := xorPad(kpad, opad)
	oh := outerNew()
	oh.Write(outerPad)
	oh.Write(innerDigest)
	return oh.Sum(nil)
}

func xorPad(kpad []byte, pad byte) []byte {
	out := make([]byte, len(kpad))
	for i := range kpad {
		out[i] = kpad[i] ^ pad
	}
	return out
}
