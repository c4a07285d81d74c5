// Package modes implements the GOST R 34.13-2015 modes of operation —
// ECB, CTR, CBC, OFB, CFB, and the two-key tweakable XTS — composed over
// the single polymorphic ciphers.Engine/ciphers.Key contract (spec
// section 4.3). Every mode function shares one prologue (size
// validation, integrity-code check, resource decrement) and one epilogue
// (mask refresh), mirrored here as the prologue/epilogue helpers every
// mode calls into. The openssl-compatibility byte order is applied per
// key by ciphers.Key.EncryptBlock/DecryptBlock and by CTR's counter
// handling, not by the prologue.
package modes

import (
	"github.com/absfs/gogost/ciphers"
)

type sentinelErr string

func (e sentinelErr) Error() string { return string(e) }

const (
	errWrongSize      sentinelErr = "wrong_length: data size is not a multiple of block size"
	errWrongICode     sentinelErr = "wrong_key_icode"
	errIVTooLong      sentinelErr = "wrong_iv_length: iv exceeds internal buffer"
	errIVNotAligned   sentinelErr = "wrong_iv_length: iv is not a multiple of block size"
	errNotCTR         sentinelErr = "wrong_block_cipher_function: no ivector loaded for continuation"
	errNilKey         sentinelErr = "null_pointer: key is nil"
	errDifferentSizes sentinelErr = "wrong_length: src and dst length mismatch"
)

// prologue validates length against block size, checks the integrity
// code, and decrements resource by the block count the operation is
// about to consume. It is the shared entry gate of spec section 4.3.
func prologue(key *ciphers.Key, size int, requireAligned bool) (blocks int64, err error) {
	if key == nil {
		return 0, errNilKey
	}
	bs := key.BlockSize()
	if requireAligned && size%bs != 0 {
		return 0, errWrongSize
	}
	if !key.CheckICode() {
		return 0, errWrongICode
	}
	blocks = int64((size + bs - 1) / bs)
	if blocks == 0 {
		blocks = 0
	}
	if blocks > 0 {
		if err := key.Resource.Use(blocks); err != nil {
			return 0, err
		}
	}
	return blocks, nil
}

// epilogue refreshes the key's mask, run unconditionally via defer by
// every mode entry point (spec section 4.3's epilogue: "call set_mask to
// refresh the mask").
func epilogue(key *ciphers.Key) {
	key.SetMask()
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
