package modes

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/absfs/gogost/ciphers"
)

func newModeKey(t *testing.T, eng ciphers.Engine) *ciphers.Key {
	t.Helper()
	key := ciphers.NewKey(eng, ciphers.Options{Rand: rand.Reader, Resource: 1 << 20}, rand.Reader)
	material := make([]byte, eng.KeySize())
	rand.Read(material)
	if err := key.SetKey(material); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestECBRoundTrip(t *testing.T) {
	for _, eng := range []ciphers.Engine{ciphers.KuznechikEngine{}, ciphers.MagmaEngine{}} {
		key := newModeKey(t, eng)
		bs := eng.BlockSize()
		plaintext := make([]byte, bs*4)
		rand.Read(plaintext)

		ciphertext := make([]byte, len(plaintext))
		if err := EncryptECB(key, ciphertext, plaintext); err != nil {
			t.Fatal(err)
		}
		decrypted := make([]byte, len(plaintext))
		if err := DecryptECB(key, decrypted, ciphertext); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(plaintext, decrypted) {
			t.Fatalf("%T: ECB round trip mismatch", eng)
		}
	}
}

func TestECBRejectsUnalignedData(t *testing.T) {
	key := newModeKey(t, ciphers.KuznechikEngine{})
	src := make([]byte, 17)
	dst := make([]byte, 17)
	if err := EncryptECB(key, dst, src); err == nil {
		t.Fatal("expected error for non-block-aligned data")
	}
}

func TestCTRRoundTrip(t *testing.T) {
	key := newModeKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 8) // half of 16-byte block
	rand.Read(iv)
	plaintext := make([]byte, 16*3+5)
	rand.Read(plaintext)

	ciphertext := make([]byte, len(plaintext))
	if err := EncryptCTR(key, ciphertext, plaintext, iv); err != nil {
		t.Fatal(err)
	}

	decrypted := make([]byte, len(plaintext))
	if err := DecryptCTR(key, decrypted, ciphertext, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("CTR round trip mismatch")
	}
}

func TestCTRContinuationWithoutIV(t *testing.T) {
	key := newModeKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 8)
	rand.Read(iv)

	part1 := make([]byte, 16*2)
	rand.Read(part1)
	c1 := make([]byte, len(part1))
	if err := EncryptCTR(key, c1, part1, iv); err != nil {
		t.Fatal(err)
	}

	part2 := make([]byte, 16)
	rand.Read(part2)
	c2 := make([]byte, len(part2))
	if err := EncryptCTR(key, c2, part2, nil); err != nil {
		t.Fatal(err)
	}

	combined := append(append([]byte{}, part1...), part2...)
	combinedCipher := make([]byte, len(combined))
	if err := EncryptCTR(key, combinedCipher, combined, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(append(append([]byte{}, c1...), c2...), combinedCipher) {
		t.Fatal("CTR continuation does not match single contiguous encryption")
	}
}

func TestCTRWithoutPriorIVFails(t *testing.T) {
	key := newModeKey(t, ciphers.KuznechikEngine{})
	src := make([]byte, 16)
	dst := make([]byte, 16)
	if err := EncryptCTR(key, dst, src, nil); err == nil {
		t.Fatal("expected error continuing CTR with no prior ivector")
	}
}

func TestCBCRoundTrip(t *testing.T) {
	key := newModeKey(t, ciphers.MagmaEngine{})
	iv := make([]byte, 8)
	rand.Read(iv)
	plaintext := make([]byte, 8*6)
	rand.Read(plaintext)

	ciphertext := make([]byte, len(plaintext))
	if err := EncryptCBC(key, ciphertext, plaintext, iv); err != nil {
		t.Fatal(err)
	}
	decrypted := make([]byte, len(plaintext))
	if err := DecryptCBC(key, decrypted, ciphertext, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatal("CBC round trip mismatch")
	}
}

func TestOFBRoundTrip(t *testing.T) {
	key := newModeKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 16)
	rand.Read(iv)
	plaintext := make([]byte, 16*4)
	rand.Read(plaintext)

	ciphertext := make([]byte, len(plaintext))
	if err := EncryptOFB(key, ciphertext, plaintext, iv); err != nil {
		t.Fatal(err)
	}
	decrypted := make([]byte, len(plaintext))
	if err := DecryptOFB(key, decrypted, ciphertext, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatal("OFB round trip mismatch")
	}
}

func TestCFBRoundTrip(t *testing.T) {
	key := newModeKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 16)
	rand.Read(iv)
	plaintext := make([]byte, 16*4)
	rand.Read(plaintext)

	ciphertext := make([]byte, len(plaintext))
	if err := EncryptCFB(key, ciphertext, plaintext, iv); err != nil {
		t.Fatal(err)
	}
	decrypted := make([]byte, len(plaintext))
	if err := DecryptCFB(key, decrypted, ciphertext, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatal("CFB round trip mismatch")
	}
}

func TestXTSRoundTrip(t *testing.T) {
	dataKey := newModeKey(t, ciphers.KuznechikEngine{})
	tweakKey := newModeKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 16)
	rand.Read(iv)
	plaintext := make([]byte, 16*5)
	rand.Read(plaintext)

	ciphertext := make([]byte, len(plaintext))
	if err := EncryptXTS(dataKey, tweakKey, ciphertext, plaintext, iv); err != nil {
		t.Fatal(err)
	}
	decrypted := make([]byte, len(plaintext))
	if err := DecryptXTS(dataKey, tweakKey, decrypted, ciphertext, iv); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatal("XTS round trip mismatch")
	}
}

func TestXTSRejectsMismatchedBlockSizes(t *testing.T) {
	dataKey := newModeKey(t, ciphers.KuznechikEngine{})
	tweakKey := newModeKey(t, ciphers.MagmaEngine{})
	iv := make([]byte, 16)
	plaintext := make([]byte, 16)
	ciphertext := make([]byte, 16)
	if err := EncryptXTS(dataKey, tweakKey, ciphertext, plaintext, iv); err == nil {
		t.Fatal("expected error for mismatched block sizes")
	}
}
