// Package mac implements the authenticators built over a block cipher or
// hash: CMAC (OMAC1) and HMAC/NMAC over Streebog (spec sections 4.4,
// 4.7). CMAC streams its input through the Aggregator envelope of spec
// section 3's Mac aggregator; HMAC/NMAC hash their input directly.
package mac

// Aggregator absorbs arbitrary-length input and hands only block-aligned
// chunks to update, releasing the trailing residue to finalize. It
// mirrors spec section 3's Mac aggregator: a rolling buffer of unaligned
// residue plus a current length, grounded on the teacher's SIVEngine.cmac
// block-chunking loop generalized into a reusable streaming shape.
type Aggregator struct {
	blockSize int
	residue   []byte
	update    func(block []byte)
	locked    bool
}

// NewAggregator builds an Aggregator that calls update once per
// blockSize-aligned chunk as data accumulates.
func NewAggregator(blockSize int, update func(block []byte)) *Aggregator {
	return &Aggregator{
		blockSize: blockSize,
		residue:   make([]byte, 0, 512),
		update:    update,
	}
}

// Reset clears any buffered residue and unlocks the aggregator.
func (a *Aggregator) Reset() {
	a.residue = a.residue[:0]
	a.locked = false
}

// errLocked is returned once a non-block-aligned Write has occurred;
// spec section 4.4 calls this "the context is locked".
type errLocked struct{}

func (errLocked) Error() string { return "wrong_block_cipher_function: aggregator is locked" }

// Write appends p to the residue buffer and flushes complete blocks to
// update while more than one block is buffered, so the last block (full
// or partial) always stays buffered for Finalize. Once Write
// has been called with input that leaves a non-empty partial residue,
// the aggregator locks: uneven input may only occur once, immediately
// before Finalize (spec section 4.4, section 8 property 9).
func (a *Aggregator) Write(p []byte) (int, error) {
	if a.locked {
		return 0, errLocked{}
	}
	a.residue = append(a.residue, p...)
	for len(a.residue) > a.blockSize {
		block := a.residue[:a.blockSize]
		a.update(block)
		a.residue = append(a.residue[:0], a.residue[a.blockSize:]...)
	}
	if len(a.residue) != a.blockSize && len(a.residue) != 0 {
		a.locked = true
	}
	return len(p), nil
}

// Tail returns the buffered final block (full, partial or empty) without
// passing it to update; Write has already flushed every earlier block.
// Finalize uses its length to tell a final full block from a partial one.
func (a *Aggregator) Tail() []byte {
	return a.residue
}
