// Package kdf implements the key-derivation chain built over HMAC-
// Streebog-256: KDF256 (spec section 4.8, R 50.1.113-2016), TLSTREE
// (R 1323565.1.043-2022), and the generalized kdf_state sequence
// generator.
package kdf

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/absfs/gogost/mac"
)

// KDF256 computes HMAC-Streebog-256(key, 0x01 ‖ label ‖ 0x00 ‖ context ‖
// 0x01 ‖ 0x00) from raw key bytes, as spec section 4.8 defines (the
// trailing 0x01 0x00 is the single-block-length field of R 50.1.113-2016
// collapsed to its fixed 256-bit case).
func KDF256(key, label, context []byte) ([]byte, error) {
	hk := mac.NewHMACStreebog256Key(1, rand.Reader)
	if err := hk.SetKey(key); err != nil {
		return nil, err
	}
	return hk.Compute(formatKDFInput(label, context))
}

// KDF256FromKey derives from an already-assigned, masked HMAC key; the
// caller does no unmasking — the HMACKey.Compute call this wraps
// performs its own icode check, resource decrement, and re-mask
// (spec section 4.8: "from a SecretKey object, which validates icode,
// unmasks temporarily, re-masks").
func KDF256FromKey(hk *mac.HMACKey, label, context []byte) ([]byte, error) {
	return hk.Compute(formatKDFInput(label, context))
}

func formatKDFInput(label, context []byte) []byte {
	out := make([]byte, 0, len(label)+len(context)+4)
	out = append(out, 0x01)
	out = append(out, label...)
	out = append(out, 0x00)
	out = append(out, context...)
	out = append(out, 0x01, 0x00)
	return out
}

func indexBytes(index uint64, mask uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], index&mask)
	return b[:]
}
