// Package aead implements the GOST authenticated-encryption
// constructions: MGM (multilinear Galois mode, spec section 4.5) and the
// CTR-CMAC/CTR-HMAC composites (spec section 4.6).
package aead

import (
	"crypto/subtle"

	"github.com/absfs/gogost/ciphers"
	"github.com/absfs/gogost/gf"
)

type sentinelErr string

func (e sentinelErr) Error() string { return string(e) }

const (
	errWrongLength  sentinelErr = "wrong_length: abitlen/pbitlen exceed n/2 bits"
	errNotEqualData sentinelErr = "not_equal_data: mgm tag mismatch"
	errLocked       sentinelErr = "wrong_block_cipher_function: mgm phase already closed"
	errNilKey       sentinelErr = "null_pointer: mgm key is nil"
)

// MGM is the single-pass authenticated-encryption state machine of spec
// section 4.5: clean, auth_update, enc_update, auth_finalize.
type MGM struct {
	encKey  *ciphers.Key
	authKey *ciphers.Key
	bs      int
	size    gf.Size

	sum     []byte
	ycount  []byte
	zcount  []byte
	abitlen uint64
	pbitlen uint64

	adClosed  bool
	encClosed bool
}

// NewMGM creates a clean MGM state over the given IV (spec section 4.5:
// "clean sets iv, zeroes counters"). encKey and authKey may be the same
// key; both must share a block size.
func NewMGM(encKey, authKey *ciphers.Key, iv []byte) (*MGM, error) {
	if encKey == nil || authKey == nil {
		return nil, errNilKey
	}
	bs := encKey.BlockSize()
	if authKey.BlockSize() != bs || len(iv) != bs {
		return nil, errWrongLength
	}

	m := &MGM{
		encKey:  encKey,
		authKey: authKey,
		bs:      bs,
		size:    gfSizeFor(bs),
		sum:     make([]byte, bs),
		ycount:  make([]byte, bs),
		zcount:  make([]byte, bs),
	}

	y := make([]byte, bs)
	copy(y, iv)
	y[0] &^= 0x80
	encKey.EncryptBlock(m.ycount, y)

	z := make([]byte, bs)
	copy(z, iv)
	z[0] |= 0x80
	authKey.EncryptBlock(m.zcount, z)

	return m, nil
}

func gfSizeFor(blockSize int) gf.Size {
	if blockSize == 8 {
		return gf.Size64
	}
	return gf.Size128
}

// absorb folds one block (zero-padded if partial) into sum using the
// current zcount multiplier, then advances zcount's high half (spec
// section 4.5: "sum ⊕= E(zcount)·X ... then zcount increments").
func (m *MGM) absorb(block []byte) {
	padded := make([]byte, m.bs)
	copy(padded, block)
	mult := make([]byte, m.bs)
	m.authKey.EncryptBlock(mult, m.zcount)
	product := gf.Mul(m.size, mult, padded)
	xorInto(m.sum, product)
	incrHighHalf(m.zcount)
}

// AuthUpdate absorbs associated data. A non-block-aligned chunk closes
// the AD phase; no further AuthUpdate calls are accepted afterward.
func (m *MGM) AuthUpdate(ad []byte) error {
	if m.adClosed || m.encClosed {
		return errLocked
	}
	off := 0
	for len(ad)-off >= m.bs {
		m.absorb(ad[off : off+m.bs])
		m.abitlen += uint64(m.bs) * 8
		off += m.bs
	}
	if off < len(ad) {
		tail := ad[off:]
		m.absorb(tail)
		m.abitlen += uint64(len(tail)) * 8
		m.adClosed = true
	}
	if exceedsHalfBlock(m.abitlen, m.bs) {
		return errWrongLength
	}
	return nil
}

// exceedsHalfBlock reports whether the bit count v does not fit in n/2
// bits, n being the block size in bits (32 bits for Magma, 64 for
// Kuznechik).
func exceedsHalfBlock(v uint64, bs int) bool {
	w := uint(bs * 4)
	return w < 64 && v>>w != 0
}

// EncUpdate processes plaintext (encrypt=true) or ciphertext
// (encrypt=false), writing the transformed block(s) to dst. The first
// call implicitly closes the AD phase; a non-block-aligned chunk closes
// the encrypted-data phase.
func (m *MGM) EncUpdate(dst, data []byte, encrypt bool) error {
	if m.encClosed {
		return errLocked
	}
	if len(dst) != len(data) {
		return errNotEqualData
	}
	m.adClosed = true

	off := 0
	for len(data)-off >= m.bs {
		m.stepBlock(dst[off:off+m.bs], data[off:off+m.bs], encrypt)
		m.pbitlen += uint64(m.bs) * 8
		off += m.bs
	}
	if off < len(data) {
		tail := data[off:]
		ks := make([]byte, m.bs)
		m.encKey.EncryptBlock(ks, m.ycount)
		out := dst[off:]
		for i := range tail {
			out[i] = tail[i] ^ ks[i]
		}
		cipherBlock := make([]byte, len(tail))
		if encrypt {
			copy(cipherBlock, out)
		} else {
			copy(cipherBlock, tail)
		}
		m.absorb(cipherBlock)
		m.pbitlen += uint64(len(tail)) * 8
		m.encClosed = true
	}
	if exceedsHalfBlock(m.pbitlen, m.bs) || exceedsHalfBlock(m.abitlen+m.pbitlen, m.bs) {
		return errWrongLength
	}
	return nil
}

func (m *MGM) stepBlock(dst, src []byte, encrypt bool) {
	ks := make([]byte, m.bs)
	m.encKey.EncryptBlock(ks, m.ycount)
	xorInto2(dst, src, ks)

	cipherBlock := make([]byte, m.bs)
	if encrypt {
		copy(cipherBlock, dst)
	} else {
		copy(cipherBlock, src)
	}
	m.absorb(cipherBlock)
	incrLowHalf(m.ycount)
}

// AuthFinalize folds the (abitlen || pbitlen) lengths block into sum and
// returns the first tagSize bytes of E(sum) (spec section 4.5).
func (m *MGM) AuthFinalize(tagSize int) ([]byte, error) {
	m.adClosed = true
	m.encClosed = true

	lengths := make([]byte, m.bs)
	half := m.bs / 2
	putBigEndian(lengths[:half], m.abitlen, half)
	putBigEndian(lengths[half:], m.pbitlen, half)
	mult := make([]byte, m.bs)
	m.authKey.EncryptBlock(mult, m.zcount)
	product := gf.Mul(m.size, mult, lengths)
	xorInto(m.sum, product)

	tag := make([]byte, m.bs)
	m.authKey.EncryptBlock(tag, m.sum)
	if tagSize > m.bs {
		tagSize = m.bs
	}
	return tag[:tagSize], nil
}

func putBigEndian(dst []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		dst[n-1-i] = byte(v >> (8 * i))
	}
}

func incrLowHalf(reg []byte) {
	half := len(reg) / 2
	incrBigEndian(reg[half:])
}

func incrHighHalf(reg []byte) {
	half := len(reg) / 2
	incrBigEndian(reg[:half])
}

func incrBigEndian(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func xorInto2(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// EncryptMGM is the one-shot wrapper: clean → auth_update(ad) →
// enc_update(plaintext) → auth_finalize.
func EncryptMGM(encKey, authKey *ciphers.Key, iv, ad, plaintext []byte, tagSize int) (ciphertext, tag []byte, err error) {
	m, err := NewMGM(encKey, authKey, iv)
	if err != nil {
		return nil, nil, err
	}
	if len(ad) > 0 {
		if err := m.AuthUpdate(ad); err != nil {
			return nil, nil, err
		}
	}
	ciphertext = make([]byte, len(plaintext))
	if len(plaintext) > 0 {
		if err := m.EncUpdate(ciphertext, plaintext, true); err != nil {
			return nil, nil, err
		}
	}
	tag, err = m.AuthFinalize(tagSize)
	return ciphertext, tag, err
}

// DecryptMGM recomputes the tag over the supplied ciphertext before
// plaintext is released, failing with errNotEqualData on mismatch (spec
// section 4.5).
func DecryptMGM(encKey, authKey *ciphers.Key, iv, ad, ciphertext, tag []byte) (plaintext []byte, err error) {
	m, err := NewMGM(encKey, authKey, iv)
	if err != nil {
		return nil, err
	}
	if len(ad) > 0 {
		if err := m.AuthUpdate(ad); err != nil {
			return nil, err
		}
	}
	plaintext = make([]byte, len(ciphertext))
	if len(ciphertext) > 0 {
		if err := m.EncUpdate(plaintext, ciphertext, false); err != nil {
			return nil, err
		}
	}
	got, err := m.AuthFinalize(len(tag))
	if err != nil {
		return nil, err
	}
	if len(got) != len(tag) || subtle.ConstantTimeCompare(got, tag) != 1 {
		return nil, errNotEqualData
	}
	return plaintext, nil
}
