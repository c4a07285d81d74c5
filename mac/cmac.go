package mac

import (
	"github.com/absfs/gogost/ciphers"
	"github.com/absfs/gogost/gf"
)

// CMAC computes OMAC1 over either block cipher (spec section 4.4): L =
// E(0), K1 = alpha*L, K2 = alpha^2*L in the cipher's native GF(2^n), then
// a CBC-MAC chain over the input with the final block masked by K1 (full
// last block) or K2 (padded last block). The zero-length message is
// defined to produce E(K2).
type CMAC struct {
	key       *ciphers.Key
	blockSize int
	k1, k2    []byte

	agg       *Aggregator
	running   []byte // running CBC-MAC accumulator
	lastBlock []byte // most recently absorbed block; Finalize does not read it
	sawAny    bool
}

// NewCMAC derives the two subkeys from key and returns a ready-to-stream
// CMAC context. key must already have assigned material.
func NewCMAC(key *ciphers.Key) (*CMAC, error) {
	bs := key.BlockSize()
	l := make([]byte, bs)
	key.EncryptBlock(l, make([]byte, bs))

	size := gfSizeFor(bs)
	alpha := make([]byte, bs)
	alpha[0] = 2

	k1 := gf.Mul(size, l, alpha)
	k2 := gf.Mul(size, k1, alpha)

	c := &CMAC{
		key:       key,
		blockSize: bs,
		k1:        k1,
		k2:        k2,
		running:   make([]byte, bs),
		lastBlock: make([]byte, bs),
	}
	c.agg = NewAggregator(bs, c.absorb)
	return c, nil
}

func gfSizeFor(blockSize int) gf.Size {
	if blockSize == 8 {
		return gf.Size64
	}
	return gf.Size128
}

// absorb runs one CBC-MAC step: running = E(running XOR block), and copies
// block into lastBlock. The final block never reaches absorb: the
// Aggregator holds it back, and Finalize masks it with K1 or K2 from the
// Aggregator's Tail.
func (c *CMAC) absorb(block []byte) {
	copy(c.lastBlock, block)
	c.sawAny = true
	xorInto(c.running, block)
	c.key.EncryptBlock(c.running, c.running)
}

// Write feeds message bytes into the running MAC, as CMAC's streaming
// interface (spec section 4.4: clean/update/finalize, block-aligned
// except for the final chunk).
func (c *CMAC) Write(p []byte) (int, error) { return c.agg.Write(p) }

// Finalize consumes any buffered tail and returns the MAC. It does not
// clear or reuse the receiver; construct a new CMAC (or call Reset) to
// authenticate another message.
func (c *CMAC) Finalize() []byte {
	tail := c.agg.Tail()
	bs := c.blockSize

	switch {
	case len(tail) == bs:
		block := make([]byte, bs)
		copy(block, tail)
		xorInto(block, c.k1)
		xorInto(c.running, block)
	case !c.sawAny && len(tail) == 0:
		xorInto(c.running, c.k2)
	default:
		padded := make([]byte, bs)
		copy(padded, tail)
		padded[len(tail)] = 0x80
		xorInto(padded, c.k2)
		xorInto(c.running, padded)
	}
	out := make([]byte, bs)
	c.key.EncryptBlock(out, c.running)
	return out
}

// Reset returns the context to its initial state so it can authenticate
// a fresh message with the same derived subkeys.
func (c *CMAC) Reset() {
	c.agg.Reset()
	for i := range c.running {
		c.running[i] = 0
	}
	c.sawAny = false
}

// Sum is the one-shot convenience wrapper: clean, update(data in full),
// finalize. It runs the shared mode prologue/epilogue of spec section
// 4.3 — integrity-code check, resource decrement by ceil(n/blockSize)
// blocks (minimum one, for the empty message), mask refresh on return —
// around the streaming CMAC logic.
func Sum(key *ciphers.Key, data []byte) ([]byte, error) {
	if !key.CheckICode() {
		return nil, errWrongICode{}
	}
	bs := key.BlockSize()
	nBlocks := int64((len(data) + bs - 1) / bs)
	if nBlocks == 0 {
		nBlocks = 1
	}
	if err := key.Resource.Use(nBlocks); err != nil {
		return nil, err
	}
	defer key.SetMask()

	c, err := NewCMAC(key)
	if err != nil {
		return nil, err
	}
	if _, err := c.Write(data); err != nil {
		return nil, err
	}
	return c.Finalize(), nil
}

type errWrongICode struct{}

func (errWrongICode) Error() string { return "wrong_key_icode" }

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
