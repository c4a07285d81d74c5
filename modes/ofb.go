package modes

import "github.com/absfs/gogost/ciphers"

// ofbProcess implements OFB, which is identical for encryption and
// decryption: keystream block i is E(register), where register is the
// next IV block while the IV still has unused blocks, else the previous
// keystream output (spec section 4.3).
func ofbProcess(key *ciphers.Key, dst, src, iv []byte) error {
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
		} else {
			copy(register, keystream)
		}
		key.EncryptBlock(keystream, register)
		xorBytes(dst[off:off+bs], src[off:off+bs], keystream)
	}
	return nil
}

func EncryptOFB(key *ciphers.Key, dst, src, iv []byte) error { return ofbProcess(key, dst, src, iv) }
func DecryptOFB(key *ciphers.Key, dst, src, iv []byte) error { return ofbProcess(key, dst, src, iv) }
