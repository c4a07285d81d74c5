package modes

import (
	"github.com/absfs/gogost/ciphers"
	"github.com/absfs/gogost/gf"
)

// xtsProcess implements two-key tweakable XTS (spec section 4.3): the
// sector tweak T0 = E_tweak(iv), each subsequent block's tweak is
// alpha*T_{i-1} in the cipher's native GF(2^n), and each data block is
// E_data(P xor T) xor T (or its decrypt inverse).
func xtsProcess(dataKey, tweakKey *ciphers.Key, dst, src, iv []byte, encrypt bool) error {
	bs := dataKey.BlockSize()
	if tweakKey.BlockSize() != bs {
		return errDifferentSizes
	}
	if len(dst) != len(src) {
		return errDifferentSizes
	}
	if len(iv) != bs {
		return errIVNotAligned
	}
	if _, err := prologue(dataKey, len(src), true); err != nil {
		return err
	}
	defer epilogue(dataKey)
	if _, err := prologue(tweakKey, bs, true); err != nil {
		return err
	}
	defer epilogue(tweakKey)

	size := gfSizeFor(bs)
	alpha := make([]byte, bs)
	alpha[0] = 2

	tweak := make([]byte, bs)
	tweakKey.EncryptBlock(tweak, iv)

	tmp := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		xorBytes(tmp, src[off:off+bs], tweak)
		if encrypt {
			dataKey.EncryptBlock(dst[off:off+bs], tmp)
		} else {
			dataKey.DecryptBlock(dst[off:off+bs], tmp)
		}
		xorBytes(dst[off:off+bs], dst[off:off+bs], tweak)
		tweak = gf.Mul(size, tweak, alpha)
	}
	return nil
}

func gfSizeFor(blockSize int) gf.Size {
	if blockSize == 8 {
		return gf.Size64
	}
	return gf.Size128
}

// EncryptXTS encrypts src with dataKey under the tweak schedule derived
// from tweakKey and iv (the data-unit sector number, zero-extended to a
// block).
func EncryptXTS(dataKey, tweakKey *ciphers.Key, dst, src, iv []byte) error {
	return xtsProcess(dataKey, tweakKey, dst, src, iv, true)
}

// DecryptXTS is the XTS inverse.
func DecryptXTS(dataKey, tweakKey *ciphers.Key, dst, src, iv []byte) error {
	return xtsProcess(dataKey, tweakKey, dst, src, iv, false)
}
