// Package mask implements the masked-key lifecycle shared by every secret
// key type in this module: XOR masking of key material at rest, a short
// integrity code over the masked key and its mask, and a resource counter
// that bounds how many operations a key may still perform (spec section
// 3, SecretKey envelope; section 4.9).
package mask

import (
	"crypto/subtle"
	"encoding/binary"
	"io"
)

// ResourceKind names what a Resource counts.
type ResourceKind uint8

const (
	// BlockResource counts processed blocks (block-cipher keys).
	BlockResource ResourceKind = iota
	// InvocationResource counts invocations (HMAC/NMAC keys).
	InvocationResource
)

// Resource is the signed remaining-capacity counter of spec section 3.
type Resource struct {
	Kind    ResourceKind
	Counter int64
}

// Use decrements the counter by n, failing without mutating the counter if
// doing so would make it negative.
func (r *Resource) Use(n int64) error {
	if r.Counter-n < 0 {
		return errLowResource
	}
	r.Counter -= n
	return nil
}

// Flags are the key-state bits of spec section 3 field (f).
type Flags uint32

const (
	// FlagSetKey is set once key material has been assigned.
	FlagSetKey Flags = 1 << iota
	// FlagNotCTR means a counter-mode IV is currently loaded and may be
	// continued without the caller supplying a fresh one.
	FlagNotCTR
)

// errLowResource and errWrongICode are returned as opaque sentinels from
// this package; callers (ciphers, mac, aead, kdf) pass them on unchanged,
// and this low-level package stays free of a dependency on the root
// package.
var (
	errLowResource = sentinel("low_key_resource")
	errWrongICode  = sentinel("wrong_key_icode")
	errKeyNotSet   = sentinel("key_value")
)

type sentinel string

func (s sentinel) Error() string { return string(s) }

// ErrLowResource is returned by Resource.Use when capacity is exhausted.
var ErrLowResource = errLowResource

// ErrWrongICode is returned by CheckICode when the integrity code does
// not match the current masked state.
var ErrWrongICode = errWrongICode

// ErrKeyNotSet is returned by operations that require FlagSetKey.
var ErrKeyNotSet = errKeyNotSet

// Key is the SecretKey envelope of spec section 3: masked key bytes, the
// mask, a 4-byte integrity code, a resource budget, and flags. It is
// embedded by every concrete key type (block-cipher keys, HMAC/NMAC
// keys) rather than used directly.
type Key struct {
	masked   []byte // K XOR M, length == key size
	mask     []byte // M, same length
	icode    [4]byte
	Resource Resource
	Flags    Flags
	rng      io.Reader
}

// New allocates a Key of the given size with no material assigned yet.
func New(size int, kind ResourceKind, budget int64, rng io.Reader) *Key {
	return &Key{
		masked:   make([]byte, size),
		mask:     make([]byte, size),
		Resource: Resource{Kind: kind, Counter: budget},
		rng:      rng,
	}
}

// Size returns the key length in bytes.
func (k *Key) Size() int { return len(k.masked) }

// SetKey assigns new key material, taking ownership of a copy of
// material. It generates a fresh mask, stores K XOR M, recomputes the
// integrity code, and sets FlagSetKey.
func (k *Key) SetKey(material []byte) error {
	if len(material) != len(k.masked) {
		return errWrongLength{have: len(material), want: len(k.masked)}
	}
	if err := k.randomize(k.mask); err != nil {
		return err
	}
	for i := range material {
		k.masked[i] = material[i] ^ k.mask[i]
	}
	k.setICode()
	k.Flags |= FlagSetKey
	return nil
}

type errWrongLength struct{ have, want int }

func (e errWrongLength) Error() string { return "wrong_length" }

// SetMask regenerates the mask: it unmasks under the current mask,
// generates a fresh one, and re-masks under it. The cleartext key value
// is unchanged; only its in-memory disguise changes. Recomputes the
// integrity code.
func (k *Key) SetMask() error {
	if k.Flags&FlagSetKey == 0 {
		return errKeyNotSet
	}
	clear := make([]byte, len(k.masked))
	defer wipeLocal(clear)
	for i := range clear {
		clear[i] = k.masked[i] ^ k.mask[i]
	}
	if err := k.randomize(k.mask); err != nil {
		return err
	}
	for i := range clear {
		k.masked[i] = clear[i] ^ k.mask[i]
	}
	k.setICode()
	return nil
}

// WithUnmasked validates the integrity code, unmasks the key into a
// scratch buffer passed to fn, and unconditionally re-masks (via
// SetMask) before returning — even if fn panics. This is the scoped
// borrow spec section 9 asks for in place of manual unmask/re-mask
// pairs: forgetting to re-mask is not reachable through this API.
func (k *Key) WithUnmasked(fn func(raw []byte) error) (err error) {
	if k.Flags&FlagSetKey == 0 {
		return errKeyNotSet
	}
	if !k.CheckICode() {
		return errWrongICode
	}
	raw := make([]byte, len(k.masked))
	defer func() {
		wipeLocal(raw)
		if maskErr := k.SetMask(); err == nil {
			err = maskErr
		}
		if r := recover(); r != nil {
			panic(r)
		}
	}()
	for i := range raw {
		raw[i] = k.masked[i] ^ k.mask[i]
	}
	err = fn(raw)
	return err
}

// setICode recomputes the integrity code over (masked key, mask).
func (k *Key) setICode() {
	k.icode = icode(k.masked, k.mask)
}

// CheckICode reports whether the stored integrity code still matches the
// current masked key and mask.
func (k *Key) CheckICode() bool {
	want := icode(k.masked, k.mask)
	return subtle.ConstantTimeCompare(want[:], k.icode[:]) == 1
}

// Wipe overwrites every owned buffer (masked key, mask, integrity code)
// with bytes sourced from the bound random generator (spec section 4.9);
// when no generator is bound, the buffers are zero-filled.
func (k *Key) Wipe() {
	_ = k.randomize(k.masked)
	_ = k.randomize(k.mask)
	_ = k.randomize(k.icode[:])
	k.Flags = 0
	k.Resource.Counter = 0
}

func (k *Key) randomize(buf []byte) error {
	if k.rng == nil {
		for i := range buf {
			buf[i] = 0
		}
		return nil
	}
	_, err := io.ReadFull(k.rng, buf)
	return err
}

func wipeLocal(buf []byte) {
	for i := range buf {
		buf[i] = 0xFF
	}
	for i := range buf {
		buf[i] = 0
	}
}

// icode computes a modified Fletcher-32 checksum with XOR accumulation
// over the concatenation of maskedKey and mask, per spec section 4.9.
func icode(maskedKey, mask []byte) [4]byte {
	var a, b uint16
	accumulate := func(data []byte) {
		for i := 0; i < len(data); i += 2 {
			var word uint16
			if i+1 < len(data) {
				word = uint16(data[i]) | uint16(data[i+1])<<8
			} else {
				word = uint16(data[i])
			}
			a ^= word
			b ^= a
		}
	}
	accumulate(maskedKey)
	accumulate(mask)
	var out [4]byte
	binary.LittleEndian.PutUint16(out[0:2], a)
	binary.LittleEndian.PutUint16(out[2:4], b)
	return out
}
