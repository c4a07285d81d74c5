package ciphers

import (
	"bytes"
	"testing"
)

func TestMagmaRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 3)
	}
	engine := MagmaEngine{}
	sched, err := engine.ScheduleKey(key, Options{})
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}
	ciphertext := make([]byte, 8)
	engine.Encrypt(sched, ciphertext, plaintext)

	decrypted := make([]byte, 8)
	engine.Decrypt(sched, decrypted, ciphertext)

	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("round trip mismatch: got %x, want %x", decrypted, plaintext)
	}
}

func TestMagmaDistinctFromPlaintext(t *testing.T) {
	key := make([]byte, 32)
	engine := MagmaEngine{}
	sched, err := engine.ScheduleKey(key, Options{})
	if err != nil {
		t.Fatal(err)
	}
	plaintext := make([]byte, 8)
	ciphertext := make([]byte, 8)
	engine.Encrypt(sched, ciphertext, plaintext)
	if bytes.Equal(plaintext, ciphertext) {
		t.Fatal("ciphertext equals plaintext for all-zero block")
	}
}

func TestMagmaSBoxInverse(t *testing.T) {
	for box := range magmaSBox {
		for i := 0; i < 16; i++ {
			if magmaSBoxInv[box][magmaSBox[box][i]] != byte(i) {
				t.Fatalf("box %d: inverse mismatch at %d", box, i)
			}
		}
	}
}

func TestMagmaCompatKeyReversal(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	engine := MagmaEngine{}
	schedPlain, err := engine.ScheduleKey(key, Options{})
	if err != nil {
		t.Fatal(err)
	}
	schedCompat, err := engine.ScheduleKey(key, Options{Compat: true})
	if err != nil {
		t.Fatal(err)
	}

	plaintext := make([]byte, 8)
	out1 := make([]byte, 8)
	out2 := make([]byte, 8)
	engine.Encrypt(schedPlain, out1, plaintext)
	engine.Encrypt(schedCompat, out2, plaintext)
	if bytes.Equal(out1, out2) {
		t.Fatal("compat key reversal produced identical schedule to non-compat")
	}
}
