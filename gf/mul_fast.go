package gf

// hasFastPath selects the carryless-multiply fast path at package init.
// The reference implementation gates this on a hardware CLMUL capability
// probe; this module has no such probe available (see DESIGN.md for why
// golang.org/x/sys/cpu was dropped), so the fast path here is a software
// nibble-windowed carryless multiply rather than a hardware intrinsic. It is
// algorithmically independent of mulSchoolbook's bit-at-a-time loop, which
// is what SelfTest's cross-check actually needs to be meaningful.
const hasFastPath = true

// mulFast multiplies x and y in GF(2^size) using 64-bit limb-pair
// carryless multiplication (clmul64) followed by the same bit-serial
// reduction mulSchoolbook uses. clmul64 skips all-zero nibbles of its
// second operand, so its running time depends on the operand values.
func mulFast(size Size, x, y []byte) []byte {
	n := bytesFor(size)
	if len(x) != n || len(y) != n {
		panic("gf: operand length mismatch")
	}
	rc := reductionConstant(size)

	xw := loadLimbs(x)
	yw := loadLimbs(y)
	nl := len(xw)

	// Schoolbook polynomial multiplication over the limb array: a 2*nl
	// limb-wide carryless product built from pairwise clmul64 of every
	// limb combination, each contribution shifted into position and
	// XORed in (carryless addition is XOR, so there is no carry
	// propagation between limb positions).
	wide := make([]uint64, 2*nl)
	for i := 0; i < nl; i++ {
		for j := 0; j < nl; j++ {
			lo, hi := clmul64(xw[i], yw[j])
			shiftXorInto(wide, i+j, lo, hi)
		}
	}

	// Reduce the 2n-limb wide product modulo the field polynomial by
	// folding high bits down one at a time, identical in effect to
	// mulSchoolbook's per-bit reduction but applied to a precomputed
	// wide product instead of interleaved with accumulation.
	for bit := nl*64*2 - 1; bit >= nl*64; bit-- {
		if limbBit(wide, bit) {
			clearBit(wide, bit)
			foldBit(wide, bit-nl*64, rc)
		}
	}
	return storeLimbs(wide[:nl], n)
}

// clmul64 computes the 128-bit carryless product of two 64-bit words
// by walking y one nibble at a time: an all-zero nibble is skipped, and
// within a non-zero nibble each set bit XORs in a copy of x shifted to
// that bit's position.
func clmul64(x, y uint64) (lo, hi uint64) {
	for i := 0; i < 16; i++ {
		nibble := (y >> (4 * i)) & 0xF
		if nibble == 0 {
			continue
		}
		var plo, phi uint64
		for b := 0; b < 4; b++ {
			if nibble&(1<<b) != 0 {
				shift := 4*i + b
				if shift < 64 {
					plo ^= x << uint(shift)
					if shift > 0 {
						phi ^= x >> uint(64-shift)
					}
				} else {
					phi ^= x << uint(shift-64)
				}
			}
		}
		lo ^= plo
		hi ^= phi
	}
	return lo, hi
}

// shiftXorInto XORs the 128-bit (lo,hi) pair into wide at limb offset
// limbOffset, spanning two consecutive limbs (hi is dropped when
// limbOffset is the last limb).
func shiftXorInto(wide []uint64, limbOffset int, lo, hi uint64) {
	wide[limbOffset] ^= lo
	if limbOffset+1 < len(wide) {
		wide[limbOffset+1] ^= hi
	}
}

func clearBit(limbs []uint64, bit int) {
	limb := bit / 64
	pos := uint(bit % 64)
	limbs[limb] &^= 1 << pos
}

// foldBit XORs the reduction constant rc into limbs starting at bit
// position pos, folding an overflow bit at absolute position pos+nl*64
// back into the field per mulSchoolbook's reduction rule.
func foldBit(limbs []uint64, pos int, rc uint64) {
	limb := pos / 64
	shift := uint(pos % 64)
	if shift == 0 {
		limbs[limb] ^= rc
		return
	}
	limbs[limb] ^= rc << shift
	if limb+1 < len(limbs) {
		limbs[limb+1] ^= rc >> (64 - shift)
	}
}
