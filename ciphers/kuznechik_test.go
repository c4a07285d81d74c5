package ciphers

import (
	"bytes"
	"testing"
)

func TestKuznechikRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	engine := KuznechikEngine{}
	sched, err := engine.ScheduleKey(key, Options{})
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x00, 0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88}
	ciphertext := make([]byte, 16)
	engine.Encrypt(sched, ciphertext, plaintext)

	decrypted := make([]byte, 16)
	engine.Decrypt(sched, decrypted, ciphertext)

	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("round trip mismatch: got %x, want %x", decrypted, plaintext)
	}
}

func TestKuznechikDistinctFromPlaintext(t *testing.T) {
	key := make([]byte, 32)
	engine := KuznechikEngine{}
	sched, err := engine.ScheduleKey(key, Options{})
	if err != nil {
		t.Fatal(err)
	}
	plaintext := make([]byte, 16)
	ciphertext := make([]byte, 16)
	engine.Encrypt(sched, ciphertext, plaintext)
	if bytes.Equal(plaintext, ciphertext) {
		t.Fatal("ciphertext equals plaintext for all-zero block")
	}
}

func TestKuznechikLinearInverse(t *testing.T) {
	var w [16]byte
	for i := range w {
		w[i] = byte(i * 7 + 3)
	}
	got := kuznechikLinearInv(kuznechikLinear(w))
	if got != w {
		t.Fatalf("L^-1(L(w)) = %x, want %x", got, w)
	}
}

func TestKuznechikSBoxInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		if kuznechikPiInv[kuznechikPi[i]] != byte(i) {
			t.Fatalf("pi^-1(pi(%d)) != %d", i, i)
		}
	}
}

func TestReverseBytesAliasSafe(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	reverseBytes(buf, buf)
	want := []byte{5, 4, 3, 2, 1}
	if !bytes.Equal(buf, want) {
		t.Fatalf("in-place reverse = %x, want %x", buf, want)
	}
}

func TestReverseBytesEmpty(t *testing.T) {
	var buf []byte
	reverseBytes(buf, buf)
}
