package modes

import "github.com/absfs/gogost/ciphers"

// EncryptCFB: ciphertext feeds back into the register (spec section
// 4.3). Register starts from the next unused IV block, else the
// previous ciphertext block.
func EncryptCFB(key *ciphers.Key, dst, src, iv []byte) error {
	bs := key.BlockSize()
	if len(dst) != len(src) {
		return errDifferentSizes
	}
	z, err := ivBlocks(key, iv)
	if err != nil {
		return err
	}
	if _, err := prologue(key, len(src), true); err != nil {
		return err
	}
	defer epilogue(key)

	register := make([]byte, bs)
	keystream := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		idx := off / bs
		if idx < z {
			copy(register, iv[idx*bs:idx*bs+bs])
		}
		key.EncryptBlock(keystream, register)
		xorBytes(dst[off:off+bs], src[off:off+bs], keystream)
		copy(register, dst[off:off+bs])
	}
	return nil
}

// DecryptCFB feeds the input ciphertext (not the decrypted output) back
// into the register, per spec section 4.3.
func DecryptCFB(key *ciphers.Key, dst, src, iv []byte) error {
	bs := key.BlockSize()
	if len(dst) != len(src) {
		return errDifferentSizes
	}
	z, err := ivBlocks(key, iv)
	if err != nil {
		return err
	}
	if _, err := prologue(key, len(src), true); err != nil {
		return err
	}
	defer epilogue(key)

	register := make([]byte, bs)
	keystream := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		idx := off / bs
		if idx < z {
			copy(register, iv[idx*bs:idx*bs+bs])
		}
		key.EncryptBlock(keystream, register)
		xorBytes(dst[off:off+bs], src[off:off+bs], keystream)
		copy(register, src[off:off+bs])
	}
	return nil
}
