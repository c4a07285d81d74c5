package modes

import "github.com/absfs/gogost/ciphers"

// ivBlocks validates an IV length and returns how many block-size chunks
// it spans (spec section 4.3: "IV length must be a multiple of block
// size and no greater than the internal 64-byte buffer; IV may span
// multiple blocks, the mode rotates through them").
func ivBlocks(key *ciphers.Key, iv []byte) (int, error) {
	bs := key.BlockSize()
	if len(iv) == 0 || len(iv)%bs != 0 || len(iv) > 64 {
		return 0, errIVNotAligned
	}
	return len(iv) / bs, nil
}

// EncryptCBC computes C_i = E(P_i xor prev), where prev is the next IV
// block while the IV has unused blocks remaining, else the previous
// ciphertext block.
func EncryptCBC(key *ciphers.Key, dst, src, iv []byte) error {
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

	prev := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		idx := off / bs
		if idx < z {
			copy(prev, iv[idx*bs:idx*bs+bs])
		}
		block := make([]byte, bs)
		xorBytes(block, src[off:off+bs], prev)
		key.EncryptBlock(dst[off:off+bs], block)
		copy(prev, dst[off:off+bs])
	}
	return nil
}

// DecryptCBC is the CBC inverse: P_i = D(C_i) xor prev.
func DecryptCBC(key *ciphers.Key, dst, src, iv []byte) error {
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

	prev := make([]byte, bs)
	decrypted := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		idx := off / bs
		if idx < z {
			copy(prev, iv[idx*bs:idx*bs+bs])
		}
		key.DecryptBlock(decrypted, src[off:off+bs])
		xorBytes(dst[off:off+bs], decrypted, prev)
		copy(prev, src[off:off+bs])
	}
	return nil
}
