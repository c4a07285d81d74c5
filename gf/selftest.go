package gf

import (
	"bytes"
	"crypto/rand"
	"fmt"
)

// init runs SelfTest once at load time with 1000 random operand pairs per
// field size and panics if the two multipliers disagree.
func init() {
	if err := SelfTest(1000); err != nil {
		panic(err)
	}
}

// SelfTest cross-checks mulFast against mulSchoolbook over n random
// operand pairs for every supported field size. The package runs it from
// init with n = 1000; tests and callers may run it again with their own n.
func SelfTest(n int) error {
	for _, size := range []Size{Size64, Size128, Size256, Size512} {
		if err := selfTestSize(size, n); err != nil {
			return err
		}
	}
	return nil
}

func selfTestSize(size Size, n int) error {
	nb := bytesFor(size)
	x := make([]byte, nb)
	y := make([]byte, nb)
	for i := 0; i < n; i++ {
		if _, err := rand.Read(x); err != nil {
			return err
		}
		if _, err := rand.Read(y); err != nil {
			return err
		}
		want := mulSchoolbook(size, x, y)
		got := mulFast(size, x, y)
		if !bytes.Equal(want, got) {
			return fmt.Errorf("gf: self-test mismatch for GF(2^%d): schoolbook=%x fast=%x (x=%x y=%x)",
				size, want, got, x, y)
		}
	}
	return nil
}
