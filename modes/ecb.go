package modes

import "github.com/absfs/gogost/ciphers"

// EncryptECB encrypts src into dst block by block, independently (spec
// section 4.3). len(src) must be a multiple of the key's block size and
// dst must be the same length.
func EncryptECB(key *ciphers.Key, dst, src []byte) error {
	return ecb(key, dst, src, key.EncryptBlock)
}

// DecryptECB is the ECB inverse.
func DecryptECB(key *ciphers.Key, dst, src []byte) error {
	return ecb(key, dst, src, key.DecryptBlock)
}

func ecb(key *ciphers.Key, dst, src []byte, op func(dst, src []byte)) error {
	if len(dst) != len(src) {
		return errDifferentSizes
	}
	if _, err := prologue(key, len(src), true); err != nil {
		return err
	}
	defer epilogue(key)

	bs := key.BlockSize()
	for off := 0; off < len(src); off += bs {
		op(dst[off:off+bs], src[off:off+bs])
	}
	return nil
}
