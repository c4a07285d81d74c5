// Package ciphers implements the two GOST R 34.12-2015 block-cipher
// engines, Magma (64-bit block) and Kuznechik (128-bit block), behind a
// single polymorphic contract that the mode engine (package modes)
// composes over. Round-key schedules are stored masked and unmasked
// just-in-time, following the masked-key discipline of internal/mask.
package ciphers

import (
	"io"

	"github.com/absfs/gogost"
	"github.com/absfs/gogost/internal/mask"
)

// Options configures a cipher engine's construction. Compat selects the
// openssl-compatibility byte order for this instance specifically,
// per SPEC_FULL.md's redesign of the process-wide switch into a
// construction-time option (spec section 9).
type Options struct {
	// Compat, when true, reverses the byte order of the whole 32-byte
	// master key (both ciphers) and of every whole 16-byte Kuznechik
	// block to match OpenSSL's wire convention (spec section 4.2,
	// section 6). Magma blocks are not reversed.
	Compat bool
	// Resource overrides the default block-count budget for a newly
	// assigned key. Zero means "use the package default".
	Resource int64
	// Rand sources mask generation and buffer wiping. Defaults to
	// crypto/rand.Reader when nil.
	Rand io.Reader
}

// Schedule is the opaque, owned round-key material produced by
// Engine.ScheduleKey. It is wiped and released by Delete.
type Schedule interface {
	Delete(rand io.Reader)
}

// Engine is the single polymorphic block-cipher contract every mode in
// package modes composes over (spec section 4.2's "Contract of each
// cipher instance"). Encrypt/Decrypt never touch resource accounting —
// that is the calling mode's responsibility.
type Engine interface {
	// BlockSize returns 8 for Magma, 16 for Kuznechik.
	BlockSize() int
	// KeySize returns the required master-key length (32 bytes for both).
	KeySize() int
	// ScheduleKey expands raw (unmasked) key bytes into a Schedule.
	ScheduleKey(key []byte, opts Options) (Schedule, error)
	// Encrypt writes one block of ciphertext for one block of plaintext.
	Encrypt(sched Schedule, dst, src []byte)
	// Decrypt writes one block of plaintext for one block of ciphertext.
	Decrypt(sched Schedule, dst, src []byte)
}

// Key is the BlockCipherKey envelope of spec section 3: a masked master
// key plus the cipher's current schedule, IV buffer, and flags.
type Key struct {
	mask.Key
	engine   Engine
	opts     Options
	schedule Schedule
	iv       [64]byte
	ivLen    int
}

// NewKey creates an unset BlockCipherKey bound to the given engine.
func NewKey(engine Engine, opts Options, rand io.Reader) *Key {
	budget := opts.Resource
	if budget == 0 {
		alg := gogost.AlgKuznechik
		if engine.BlockSize() == 8 {
			alg = gogost.AlgMagma
		}
		budget = gogost.DefaultResource(alg)
	}
	k := &Key{
		engine: engine,
		opts:   opts,
	}
	k.Key = *mask.New(engine.KeySize(), mask.BlockResource, budget, rand)
	return k
}

// SetKey assigns new master-key material, schedules round keys under it,
// and discards any prior schedule. It re-masks the stored key on return.
func (k *Key) SetKey(material []byte) error {
	if len(material) != k.engine.KeySize() {
		return errWrongKeySize
	}
	sched, err := k.engine.ScheduleKey(material, k.opts)
	if err != nil {
		return err
	}
	if k.schedule != nil {
		k.schedule.Delete(k.randSource())
	}
	if err := k.Key.SetKey(material); err != nil {
		sched.Delete(k.randSource())
		return err
	}
	k.schedule = sched
	return nil
}

func (k *Key) randSource() io.Reader { return k.opts.Rand }

// BlockSize returns the engine's block size.
func (k *Key) BlockSize() int { return k.engine.BlockSize() }

// Compat reports this key's openssl-compatibility setting.
func (k *Key) Compat() bool { return k.opts.Compat }

// EncryptBlock encrypts exactly one block using the current schedule.
// It does not validate the integrity code or consume resource — callers
// in package modes are responsible for the shared prologue/epilogue.
// When this key's Options.Compat is set and the engine is 128-bit
// (Kuznechik), input and output bytes are reversed to match OpenSSL's
// wire convention (spec section 6); Magma blocks are never reversed.
func (k *Key) EncryptBlock(dst, src []byte) {
	if k.opts.Compat && k.engine.BlockSize() == 16 {
		tmp := make([]byte, len(src))
		reverseBytes(tmp, src)
		out := make([]byte, len(dst))
		k.engine.Encrypt(k.schedule, out, tmp)
		reverseBytes(dst, out)
		return
	}
	k.engine.Encrypt(k.schedule, dst, src)
}

// DecryptBlock decrypts exactly one block using the current schedule.
func (k *Key) DecryptBlock(dst, src []byte) {
	if k.opts.Compat && k.engine.BlockSize() == 16 {
		tmp := make([]byte, len(src))
		reverseBytes(tmp, src)
		out := make([]byte, len(dst))
		k.engine.Decrypt(k.schedule, out, tmp)
		reverseBytes(dst, out)
		return
	}
	k.engine.Decrypt(k.schedule, dst, src)
}

// IVBuf exposes the internal IV/counter buffer and its current length to
// package modes, which owns the IV-handling logic for every mode.
func (k *Key) IVBuf() (buf []byte, length int) { return k.iv[:], k.ivLen }

// SetIV stores a new IV, bounded by the 64-byte buffer (spec section 3).
func (k *Key) SetIV(iv []byte) error {
	if len(iv) > len(k.iv) {
		return errIVTooLong
	}
	copy(k.iv[:], iv)
	for i := len(iv); i < len(k.iv); i++ {
		k.iv[i] = 0
	}
	k.ivLen = len(iv)
	return nil
}

// Delete wipes the schedule and masked state and releases the key.
func (k *Key) Delete() {
	if k.schedule != nil {
		k.schedule.Delete(k.randSource())
		k.schedule = nil
	}
	k.Key.Wipe()
	readRandom(k.randSource(), k.iv[:])
	k.ivLen = 0
}

type sentinelErr string

func (e sentinelErr) Error() string { return string(e) }

const (
	errWrongKeySize sentinelErr = "wrong_length: master key size does not match engine"
	errIVTooLong    sentinelErr = "wrong_iv_length: iv exceeds 64-byte buffer"
)
