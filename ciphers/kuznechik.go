package ciphers

import (
	"encoding/binary"
	"io"
)

// kuznechikSchedule holds the ten masked 128-bit round keys produced by
// the Feistel key-expansion network of GOST R 34.12-2015, plus the mask
// that was XORed in at schedule time. The mask is never removed during
// encryption or decryption: both XORs are applied back to back at the
// point of use, so the round key never rests unmasked in the schedule
// (spec section 4.2).
type kuznechikSchedule struct {
	masked [10][16]byte
	masks  [10][16]byte
}

// KuznechikEngine is the Engine implementation for the 128-bit GOST
// R 34.12-2015 block cipher.
type KuznechikEngine struct{}

func (KuznechikEngine) BlockSize() int { return 16 }
func (KuznechikEngine) KeySize() int   { return 32 }

func (e KuznechikEngine) ScheduleKey(key []byte, opts Options) (Schedule, error) {
	if len(key) != 32 {
		return nil, errWrongKeySize
	}
	work := make([]byte, 32)
	copy(work, key)
	if opts.Compat {
		reverseBytes(work, work)
	}

	var a0, a1 [16]byte
	copy(a0[:], work[:16])
	copy(a1[:], work[16:32])

	var raw [10][16]byte
	raw[0] = a1
	raw[1] = a0

	idx := uint64(0)
	slot := 2
	for j := 0; j < 4; j++ {
		for i := 0; i < 8; i++ {
			idx++
			var c [16]byte
			binary.LittleEndian.PutUint64(c[:8], idx)
			c = kuznechikLinear(c)

			var t [16]byte
			for b := range t {
				t[b] = a1[b] ^ c[b]
			}
			t = kuznechikSBox(t)
			t = kuznechikLinear(t)
			for b := range t {
				t[b] ^= a0[b]
			}
			a0, a1 = a1, t
		}
		raw[slot] = a1
		slot++
		raw[slot] = a0
		slot++
	}

	sched := &kuznechikSchedule{}
	rng := opts.Rand
	for i := 0; i < 10; i++ {
		readRandom(rng, sched.masks[i][:])
		for b := 0; b < 16; b++ {
			sched.masked[i][b] = raw[i][b] ^ sched.masks[i][b]
		}
	}
	if opts.Compat {
		for i := 0; i < 10; i++ {
			reverse16(&sched.masked[i])
			reverse16(&sched.masks[i])
		}
	}
	wipe16Array(&raw)
	return sched, nil
}

func (KuznechikEngine) Encrypt(s Schedule, dst, src []byte) {
	sched := s.(*kuznechikSchedule)
	var x [16]byte
	copy(x[:], src)
	for r := 0; r < 9; r++ {
		var y [16]byte
		for b := range y {
			y[b] = x[b] ^ sched.masked[r][b] ^ sched.masks[r][b]
		}
		var out [16]byte
		for pos := 0; pos < 16; pos++ {
			col := kuznechikEncTable[pos][y[pos]]
			for b := range out {
				out[b] ^= col[b]
			}
		}
		x = out
	}
	for b := range x {
		x[b] ^= sched.masked[9][b] ^ sched.masks[9][b]
	}
	copy(dst, x[:])
}

func (KuznechikEngine) Decrypt(s Schedule, dst, src []byte) {
	sched := s.(*kuznechikSchedule)
	var x [16]byte
	copy(x[:], src)
	for b := range x {
		x[b] ^= sched.masked[9][b] ^ sched.masks[9][b]
	}
	for r := 8; r >= 0; r-- {
		var lx [16]byte
		for pos := 0; pos < 16; pos++ {
			col := kuznechikLinvTable[pos][x[pos]]
			for b := range lx {
				lx[b] ^= col[b]
			}
		}
		sx := kuznechikSBoxInv(lx)
		for b := range sx {
			x[b] = sx[b] ^ sched.masked[r][b] ^ sched.masks[r][b]
		}
	}
	copy(dst, x[:])
}

func (s *kuznechikSchedule) Delete(rand io.Reader) {
	for i := range s.masked {
		readRandom(rand, s.masked[i][:])
		readRandom(rand, s.masks[i][:])
	}
}

// reverseBytes writes src to dst in reverse byte order; dst and src may
// alias. This is the openssl_compability byte-order switch of spec
// section 6, applied to Kuznechik's full 32-byte key and, per block, by
// the caller in Key.EncryptBlock/DecryptBlock.
func reverseBytes(dst, src []byte) {
	n := len(src)
	if n == 0 {
		return
	}
	if &dst[0] == &src[0] {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			dst[i], dst[j] = dst[j], dst[i]
		}
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}

func readRandom(rand io.Reader, buf []byte) {
	if rand == nil {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	io.ReadFull(rand, buf)
}

func wipe16Array(a *[10][16]byte) {
	for i := range a {
		for b := range a[i] {
			a[i][b] = 0
		}
	}
}
