package ciphers

// magmaSBox holds the eight 4-bit substitution tables of the Magma cipher
// (GOST R 34.12-2015 / GOST 28147-89), given as the id-tc26-gost-28147-param-Z
// parameter set: the default substitution used where no other parameter set
// is negotiated.
var magmaSBox = [8][16]byte{
	{0xC, 0x4, 0x6, 0x2, 0xA, 0x5, 0xB, 0x9, 0xE, 0x8, 0xD, 0x7, 0x0, 0x3, 0xF, 0x1},
	{0x6, 0x8, 0x2, 0x3, 0x9, 0xA, 0x5, 0xC, 0x1, 0xE, 0x4, 0x7, 0xB, 0xD, 0x0, 0xF},
	{0xB, 0x3, 0x5, 0x8, 0x2, 0xF, 0xA, 0xD, 0xE, 0x1, 0x7, 0x4, 0xC, 0x9, 0x6, 0x0},
	{0xC, 0x8, 0x2, 0x1, 0xD, 0x4, 0xF, 0x6, 0x7, 0x0, 0xA, 0x5, 0x3, 0xE, 0x9, 0xB},
	{0x7, 0xF, 0x5, 0xA, 0x8, 0x1, 0x6, 0xD, 0x0, 0x9, 0x3, 0xE, 0xB, 0x4, 0x2, 0xC},
	{0x5, 0xD, 0xF, 0x6, 0x9, 0x2, 0xC, 0xA, 0xB, 0x7, 0x8, 0x1, 0x4, 0x3, 0xE, 0x0},
	{0x8, 0xE, 0x2, 0x5, 0x6, 0x9, 0x1, 0xC, 0xF, 0x4, 0xB, 0x0, 0xD, 0xA, 0x3, 0x7},
	{0x1, 0x7, 0xE, 0xD, 0x0, 0x5, 0x8, 0x3, 0x4, 0xF, 0xA, 0x6, 0x9, 0xC, 0xB, 0x2},
}

var magmaSBoxInv [8][16]byte

func init() {
	for box := range magmaSBox {
		for i, v := range magmaSBox[box] {
			magmaSBoxInv[box][v] = byte(i)
		}
	}
}

// magmaT applies the nonlinear substitution t: the eight 4-bit S-boxes,
// each acting on one nibble of the 32-bit word, least-significant nibble
// first through magmaSBox[0].
func magmaT(a uint32) uint32 {
	var out uint32
	for box := 0; box < 8; box++ {
		nibble := byte(a>>(4*box)) & 0xF
		out |= uint32(magmaSBox[box][nibble]) << (4 * box)
	}
	return out
}

// magmaG is the round function g[k](a) = rotl11(t(a + k mod 2^32)).
func magmaG(a, k uint32) uint32 {
	s := magmaT(a + k)
	return s<<11 | s>>21
}
