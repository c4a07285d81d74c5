package kdf

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/absfs/gogost/ciphers"
	"github.com/absfs/gogost/mac"
)

// MACKind selects the inner MAC of a kdf_state's low nibble (spec
// section 4.8).
type MACKind uint8

const (
	MACMagmaCMAC MACKind = iota + 1
	MACKuznechikCMAC
	MACHMACStreebog256
	MACHMACStreebog512
	MACNMAC
)

// InterKeyKind selects the intermediate-key derivation of a kdf_state's
// high nibble.
type InterKeyKind uint8

const (
	InterKeyNMAC InterKeyKind = iota + 1
	InterKeyHMAC512
	InterKeyXOR
)

// errLowResource mirrors the mask package's sentinel without importing
// it, since State's resource ceiling is checked against the MAC's own
// global resource configuration rather than a masked key's counter.
type errLowResource struct{}

func (errLowResource) Error() string { return "low_key_resource: kdf_state budget exceeds MAC ceiling" }

// State is the generalized kdf_state sequence generator of spec section
// 4.8: it emits an arbitrary-length stream of keying material by
// chaining K_i = MAC(interkey, K_{i-1} ‖ counter ‖ label ‖ L_bits).
type State struct {
	blockSize  int
	macFn      func(key, data []byte) ([]byte, error)
	interkey   []byte
	label      []byte
	lengthBits uint64

	counter  uint64
	current  []byte
	residue  []byte
	maxBlocks int64
	produced  int64
}

// NewState builds a kdf_state bound to the given MAC/intermediate-key
// combination. maxBlocks rejects construction when it would
// exceed the MAC's configured global resource ceiling (spec section
// 4.8: "reject state creation when the configured maximum exceeds the
// MAC's global resource ceiling").
func NewState(mkind MACKind, ikind InterKeyKind, key, label []byte, lengthBits uint64, maxBlocks, macResourceCeiling int64) (*State, error) {
	if maxBlocks > macResourceCeiling {
		return nil, errLowResource{}
	}
	interkey, err := deriveInterkey(ikind, key)
	if err != nil {
		return nil, err
	}
	blockSize, macFn, err := macFor(mkind, interkey)
	if err != nil {
		return nil, err
	}
	return &State{
		blockSize:  blockSize,
		macFn:      macFn,
		interkey:   interkey,
		label:      label,
		lengthBits: lengthBits,
		current:    make([]byte, blockSize),
		maxBlocks:  maxBlocks,
	}, nil
}

func macFor(kind MACKind, key []byte) (blockSize int, fn func(key, data []byte) ([]byte, error), err error) {
	switch kind {
	case MACMagmaCMAC:
		ck := ciphers.NewKey(ciphers.MagmaEngine{}, ciphers.Options{Rand: rand.Reader, Resource: 1 << 40}, rand.Reader)
		if err := ck.SetKey(key); err != nil {
			return 0, nil, err
		}
		return 8, func(_, data []byte) ([]byte, error) { return mac.Sum(ck, data) }, nil
	case MACKuznechikCMAC:
		ck := ciphers.NewKey(ciphers.KuznechikEngine{}, ciphers.Options{Rand: rand.Reader, Resource: 1 << 40}, rand.Reader)
		if err := ck.SetKey(key); err != nil {
			return 0, nil, err
		}
		return 16, func(_, data []byte) ([]byte, error) { return mac.Sum(ck, data) }, nil
	case MACHMACStreebog256:
		hk := mac.NewHMACStreebog256Key(1<<40, rand.Reader)
		if err := hk.SetKey(key); err != nil {
			return 0, nil, err
		}
		return 32, func(_, data []byte) ([]byte, error) { return hk.Compute(data) }, nil
	case MACHMACStreebog512:
		hk := mac.NewHMACStreebog512Key(1<<40, rand.Reader)
		if err := hk.SetKey(key); err != nil {
			return 0, nil, err
		}
		return 64, func(_, data []byte) ([]byte, error) { return hk.Compute(data) }, nil
	case MACNMAC:
		hk := mac.NewNMACStreebogKey(1<<40, rand.Reader)
		if err := hk.SetKey(key); err != nil {
			return 0, nil, err
		}
		return 32, func(_, data []byte) ([]byte, error) { return hk.Compute(data) }, nil
	default:
		return 0, nil, errUnknownKind{}
	}
}

type errUnknownKind struct{}

func (errUnknownKind) Error() string { return "wrong_oid: unknown kdf_state mac/interkey kind" }

func deriveInterkey(kind InterKeyKind, key []byte) ([]byte, error) {
	switch kind {
	case InterKeyNMAC:
		hk := mac.NewNMACStreebogKey(1, rand.Reader)
		if err := hk.SetKey(key); err != nil {
			return nil, err
		}
		return hk.Compute(key)
	case InterKeyHMAC512:
		hk := mac.NewHMACStreebog512Key(1, rand.Reader)
		if err := hk.SetKey(key); err != nil {
			return nil, err
		}
		return hk.Compute(key)
	case InterKeyXOR:
		out := make([]byte, len(key))
		copy(out, key)
		return out, nil
	default:
		return nil, errUnknownKind{}
	}
}

// nextBlock advances the chain by one block: K_i = MAC(interkey, K_{i-1} ‖
// counter ‖ label ‖ L_bits).
func (s *State) nextBlock() ([]byte, error) {
	var ctrBuf [8]byte
	binary.BigEndian.PutUint64(ctrBuf[:], s.counter)
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], s.lengthBits)

	input := make([]byte, 0, len(s.current)+8+len(s.label)+8)
	input = append(input, s.current...)
	input = append(input, ctrBuf[:]...)
	input = append(input, s.label...)
	input = append(input, lenBuf[:]...)

	out, err := s.macFn(s.interkey, input)
	if err != nil {
		return nil, err
	}
	s.counter++
	s.current = out
	s.produced++
	return out, nil
}

// Next fills buffer with the next len(buffer) bytes of the keying
// stream, spanning as many internal blocks as required.
func (s *State) Next(buffer []byte) error {
	out := buffer
	for len(out) > 0 {
		if len(s.residue) == 0 {
			if s.produced >= s.maxBlocks {
				return errLowResource{}
			}
			block, err := s.nextBlock()
			if err != nil {
				return err
			}
			s.residue = block
		}
		n := copy(out, s.residue)
		out = out[n:]
		s.residue = s.residue[n:]
	}
	return nil
}
