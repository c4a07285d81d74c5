// Package streebog adapts github.com/ddulesov/gogost's GOST R 34.11-2012
// hash implementations to the narrow surface HMAC, NMAC, and the KDF
// chain need. Streebog itself is an external collaborator to the
// symmetric core (spec section 1's out-of-scope list), so this package
// is a thin binding rather than a reimplementation: the compression
// function, its S-box, and its linear transform live entirely in the
// imported module.
package streebog

import (
	"hash"

	gost256 "github.com/ddulesov/gogost/gost34112012256"
	gost512 "github.com/ddulesov/gogost/gost34112012512"
)

// BlockSize is the compression block size shared by both output widths
// of GOST R 34.11-2012 (64 bytes), used by HMAC's key-padding rule.
const BlockSize = 64

// New256 returns a new Streebog-256 hash.Hash.
func New256() hash.Hash { return gost256.New() }

// New512 returns a new Streebog-512 hash.Hash.
func New512() hash.Hash { return gost512.New() }

// Sum256 returns the Streebog-256 digest of data.
func Sum256(data []byte) [32]byte {
	h := gost256.New()
	h.Write(data)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Sum512 returns the Streebog-512 digest of data.
func Sum512(data []byte) [64]byte {
	h := gost512.New()
	h.Write(data)
	var out [64]byte
	h.Sum(out[:0])
	return out
}
