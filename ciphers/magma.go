package ciphers

import (
	"encoding/binary"
	"io"
)

// magmaSchedule holds the 32 masked round keys of the Magma cipher. Each
// round key is masked with its own 32-bit word, XORed back in at the
// point of use exactly as kuznechikSchedule does for its 128-bit keys
// (spec section 4.2).
type magmaSchedule struct {
	masked [32]uint32
	masks  [32]uint32
}

// MagmaEngine is the Engine implementation for the 64-bit GOST
// R 34.12-2015 block cipher.
type MagmaEngine struct{}

func (MagmaEngine) BlockSize() int { return 8 }
func (MagmaEngine) KeySize() int   { return 32 }

func (e MagmaEngine) ScheduleKey(key []byte, opts Options) (Schedule, error) {
	if len(key) != 32 {
		return nil, errWrongKeySize
	}
	work := make([]byte, 32)
	copy(work, key)
	if opts.Compat {
		reverseBytes(work, work)
	}

	var k [8]uint32
	for i := 0; i < 8; i++ {
		k[i] = binary.LittleEndian.Uint32(work[4*i : 4*i+4])
	}

	var raw [32]uint32
	for rep := 0; rep < 3; rep++ {
		for i := 0; i < 8; i++ {
			raw[rep*8+i] = k[i]
		}
	}
	for i := 0; i < 8; i++ {
		raw[24+i] = k[7-i]
	}

	sched := &magmaSchedule{}
	rng := opts.Rand
	for i := 0; i < 32; i++ {
		var mb [4]byte
		readRandom(rng, mb[:])
		mask := binary.LittleEndian.Uint32(mb[:])
		sched.masks[i] = mask
		sched.masked[i] = raw[i] ^ mask
	}

	for i := range work {
		work[i] = 0
	}
	for i := range raw {
		raw[i] = 0
	}
	return sched, nil
}

// magmaFeistel runs the 32-round unbalanced Feistel network shared by
// encryption and decryption: the only difference between the two is the
// order round keys are presented in (spec section 4.2, "the same network
// run with round keys reversed").
func magmaFeistel(a0, a1 uint32, keys func(i int) uint32) (uint32, uint32) {
	for i := 0; i < 31; i++ {
		a0, a1 = a1^magmaG(a0, keys(i)), a0
	}
	a1 = a1 ^ magmaG(a0, keys(31))
	return a0, a1
}

func (MagmaEngine) Encrypt(s Schedule, dst, src []byte) {
	sched := s.(*magmaSchedule)
	a1 := binary.LittleEndian.Uint32(src[0:4])
	a0 := binary.LittleEndian.Uint32(src[4:8])
	a0, a1 = magmaFeistel(a0, a1, func(i int) uint32 {
		return sched.masked[i] ^ sched.masks[i]
	})
	binary.LittleEndian.PutUint32(dst[0:4], a1)
	binary.LittleEndian.PutUint32(dst[4:8], a0)
}

func (MagmaEngine) Decrypt(s Schedule, dst, src []byte) {
	sched := s.(*magmaSchedule)
	a1 := binary.LittleEndian.Uint32(src[0:4])
	a0 := binary.LittleEndian.Uint32(src[4:8])
	a0, a1 = magmaFeistel(a0, a1, func(i int) uint32 {
		j := 31 - i
		return sched.masked[j] ^ sched.masks[j]
	})
	binary.LittleEndian.PutUint32(dst[0:4], a1)
	binary.LittleEndian.PutUint32(dst[4:8], a0)
}

func (s *magmaSchedule) Delete(rand io.Reader) {
	for i := range s.masked {
		var b [4]byte
		readRandom(rand, b[:])
		s.masked[i] = binary.LittleEndian.Uint32(b[:])
		readRandom(rand, b[:])
		s.masks[i] = binary.LittleEndian.Uint32(b[:])
	}
}
