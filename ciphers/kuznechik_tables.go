package ciphers

// Fixed tables for the Kuznechik cipher (GOST R 34.12-2015): the
// nonlinear bijection pi, its inverse, and the 16-byte LFSR tap vector
// whose 16-fold application is the linear transform L. These are
// published standard constants (not implementation-specific code) and
// are grounded on the reference parameter tables in the original GOST
// implementation this module's spec was distilled from.
var kuznechikPi = [256]byte{
	0xFC, 0xEE, 0xDD, 0x11, 0xCF, 0x6E, 0x31, 0x16, 0xFB, 0xC4, 0xFA, 0xDA, 0x23, 0xC5, 0x04, 0x4D,
	0xE9, 0x77, 0xF0, 0xDB, 0x93, 0x2E, 0x99, 0xBA, 0x17, 0x36, 0xF1, 0xBB, 0x14, 0xCD, 0x5F, 0xC1,
	0xF9, 0x18, 0x65, 0x5A, 0xE2, 0x5C, 0xEF, 0x21, 0x81, 0x1C, 0x3C, 0x42, 0x8B, 0x01, 0x8E, 0x4F,
	0x05, 0x84, 0x02, 0xAE, 0xE3, 0x6A, 0x8F, 0xA0, 0x06, 0x0B, 0xED, 0x98, 0x7F, 0xD4, 0xD3, 0x1F,
	0xEB, 0x34, 0x2C, 0x51, 0xEA, 0xC8, 0x48, 0xAB, 0xF2, 0x2A, 0x68, 0xA2, 0xFD, 0x3A, 0xCE, 0xCC,
	0xB5, 0x70, 0x0E, 0x56, 0x08, 0x0C, 0x76, 0x12, 0xBF, 0x72, 0x13, 0x47, 0x9C, 0xB7, 0x5D, 0x87,
	0x15, 0xA1, 0x96, 0x29, 0x10, 0x7B, 0x9A, 0xC7, 0xF3, 0x91, 0x78, 0x6F, 0x9D, 0x9E, 0xB2, 0xB1,
	0x32, 0x75, 0x19, 0x3D, 0xFF, 0x35, 0x8A, 0x7E, 0x6D, 0x54, 0xC6, 0x80, 0xC3, 0xBD, 0x0D, 0x57,
	0xDF, 0xF5, 0x24, 0xA9, 0x3E, 0xA8, 0x43, 0xC9, 0xD7, 0x79, 0xD6, 0xF6, 0x7C, 0x22, 0xB9, 0x03,
	0xE0, 0x0F, 0xEC, 0xDE, 0x7A, 0x94, 0xB0, 0xBC, 0xDC, 0xE8, 0x28, 0x50, 0x4E, 0x33, 0x0A, 0x4A,
	0xA7, 0x97, 0x60, 0x73, 0x1E, 0x00, 0x62, 0x44, 0x1A, 0xB8, 0x38, 0x82, 0x64, 0x9F, 0x26, 0x41,
	0xAD, 0x45, 0x46, 0x92, 0x27, 0x5E, 0x55, 0x2F, 0x8C, 0xA3, 0xA5, 0x7D, 0x69, 0xD5, 0x95, 0x3B,
	0x07, 0x58, 0xB3, 0x40, 0x86, 0xAC, 0x1D, 0xF7, 0x30, 0x37, 0x6B, 0xE4, 0x88, 0xD9, 0xE7, 0x89,
	0xE1, 0x1B, 0x83, 0x49, 0x4C, 0x3F, 0xF8, 0xFE, 0x8D, 0x53, 0xAA, 0x90, 0xCA, 0xD8, 0x85, 0x61,
	0x20, 0x71, 0x67, 0xA4, 0x2D, 0x2B, 0x09, 0x5B, 0xCB, 0x9B, 0x25, 0xD0, 0xBE, 0xE5, 0x6C, 0x52,
	0x59, 0xA6, 0x74, 0xD2, 0xE6, 0xF4, 0xB4, 0xC0, 0xD1, 0x66, 0xAF, 0xC2, 0x39, 0x4B, 0x63, 0xB6,
}

var kuznechikPiInv [256]byte

var kuznechikLTap = [16]byte{
	0x01, 0x94, 0x20, 0x85, 0x10, 0xC2, 0xC0, 0x01, 0xFB, 0x01, 0xC0, 0xC2, 0x10, 0x85, 0x20, 0x94,
}

func init() {
	for i, v := range kuznechikPi {
		kuznechikPiInv[v] = byte(i)
	}
}

// gmul256 multiplies two elements of GF(2^8) under the reduction
// polynomial x^8 + x^7 + x^6 + x + 1 (constant 0xC3) used by Kuznechik's
// linear transform, per GOST R 34.12-2015.
func gmul256(x, y byte) byte {
	var z byte
	for y != 0 {
		if y&1 != 0 {
			z ^= x
		}
		hi := x & 0x80
		x <<= 1
		if hi != 0 {
			x ^= 0xC3
		}
		y >>= 1
	}
	return z
}

// kuznechikLinear applies the full 16-tap LFSR, equivalent to the linear
// transform L of GOST R 34.12-2015.
func kuznechikLinear(w [16]byte) [16]byte {
	for step := 0; step < 16; step++ {
		var z byte
		for i := 0; i < 16; i++ {
			z ^= gmul256(w[i], kuznechikLTap[i])
		}
		copy(w[:15], w[1:])
		w[15] = z
	}
	return w
}

// kuznechikLinearInv computes L^-1 by exploiting that the companion
// matrix's inverse is the anti-transpose of its forward form: reversing
// the byte order, applying L, and reversing again.
func kuznechikLinearInv(w [16]byte) [16]byte {
	reverse16(&w)
	w = kuznechikLinear(w)
	reverse16(&w)
	return w
}

func reverse16(w *[16]byte) {
	for i, j := 0, 15; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}

func kuznechikSBox(w [16]byte) [16]byte {
	for i := range w {
		w[i] = kuznechikPi[w[i]]
	}
	return w
}

func kuznechikSBoxInv(w [16]byte) [16]byte {
	for i := range w {
		w[i] = kuznechikPiInv[w[i]]
	}
	return w
}

// kuznechikEncTable[pos][v] = L(e_pos(pi(v))): the fused S-box-then-L
// lookup spec section 4.2 calls for. Built once at package init since
// the tables are process-wide immutable state (spec section 5).
var kuznechikEncTable [16][256][16]byte

// kuznechikLinvTable[pos][v] = L^-1(e_pos(v)): the linear half of the
// decrypt-table fold; S^-1 is applied separately (see kuznechik.go) since
// it does not distribute over the per-position sum the way the forward
// fused table does.
var kuznechikLinvTable [16][256][16]byte

func init() {
	for pos := 0; pos < 16; pos++ {
		for v := 0; v < 256; v++ {
			var unit [16]byte
			unit[pos] = kuznechikPi[v]
			kuznechikEncTable[pos][v] = kuznechikLinear(unit)

			var unit2 [16]byte
			unit2[pos] = byte(v)
			kuznechikLinvTable[pos][v] = kuznechikLinearInv(unit2)
		}
	}
}
