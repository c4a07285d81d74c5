package aead

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/absfs/gogost/ciphers"
)

func newAEADKey(t *testing.T, eng ciphers.Engine) *ciphers.Key {
	t.Helper()
	key := ciphers.NewKey(eng, ciphers.Options{Rand: rand.Reader, Resource: 1 << 20}, rand.Reader)
	material := make([]byte, eng.KeySize())
	rand.Read(material)
	if err := key.SetKey(material); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestMGMRoundTrip(t *testing.T) {
	encKey := newAEADKey(t, ciphers.KuznechikEngine{})
	authKey := newAEADKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 16)
	rand.Read(iv)
	iv[0] &^= 0x80

	ad := []byte("associated data")
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	ciphertext, tag, err := EncryptMGM(encKey, authKey, iv, ad, plaintext, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(tag) != 16 {
		t.Fatalf("tag length = %d, want 16", len(tag))
	}

	decrypted, err := DecryptMGM(encKey, authKey, iv, ad, ciphertext, tag)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("MGM round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestMGMRejectsTamperedTag(t *testing.T) {
	encKey := newAEADKey(t, ciphers.MagmaEngine{})
	authKey := newAEADKey(t, ciphers.MagmaEngine{})
	iv := make([]byte, 8)
	rand.Read(iv)
	iv[0] &^= 0x80

	plaintext := []byte("secret message")
	ciphertext, tag, err := EncryptMGM(encKey, authKey, iv, nil, plaintext, 8)
	if err != nil {
		t.Fatal(err)
	}
	tag[0] ^= 0xFF

	if _, err := DecryptMGM(encKey, authKey, iv, nil, ciphertext, tag); err == nil {
		t.Fatal("expected tag mismatch error")
	}
}

func TestMGMRejectsTamperedCiphertext(t *testing.T) {
	encKey := newAEADKey(t, ciphers.MagmaEngine{})
	authKey := newAEADKey(t, ciphers.MagmaEngine{})
	iv := make([]byte, 8)
	rand.Read(iv)
	iv[0] &^= 0x80

	plaintext := []byte("secret message!!")
	ciphertext, tag, err := EncryptMGM(encKey, authKey, iv, []byte("ad"), plaintext, 8)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext[0] ^= 0xFF

	if _, err := DecryptMGM(encKey, authKey, iv, []byte("ad"), ciphertext, tag); err == nil {
		t.Fatal("expected tag mismatch error on tampered ciphertext")
	}
}

func TestMGMEmptyPlaintext(t *testing.T) {
	encKey := newAEADKey(t, ciphers.KuznechikEngine{})
	authKey := newAEADKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 16)
	rand.Read(iv)
	iv[0] &^= 0x80

	ciphertext, tag, err := EncryptMGM(encKey, authKey, iv, []byte("only ad"), nil, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(ciphertext) != 0 {
		t.Fatal("expected empty ciphertext")
	}
	plaintext, err := DecryptMGM(encKey, authKey, iv, []byte("only ad"), ciphertext, tag)
	if err != nil {
		t.Fatal(err)
	}
	if len(plaintext) != 0 {
		t.Fatal("expected empty plaintext")
	}
}

func TestMGMStreamingMatchesOneShot(t *testing.T) {
	encKey := newAEADKey(t, ciphers.KuznechikEngine{})
	authKey := newAEADKey(t, ciphers.KuznechikEngine{})
	iv := make([]byte, 16)
	rand.Read(iv)
	iv[0] &^= 0x80

	ad := []byte("header")
	plaintext := make([]byte, 16*3+5)
	rand.Read(plaintext)

	oneShotCipher, oneShotTag, err := EncryptMGM(encKey, authKey, iv, ad, plaintext, 16)
	if err != nil {
		t.Fatal(err)
	}

	m, err := NewMGM(encKey, authKey, iv)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AuthUpdate(ad); err != nil {
		t.Fatal(err)
	}
	streamedCipher := make([]byte, len(plaintext))
	if err := m.EncUpdate(streamedCipher[:16*2], plaintext[:16*2], true); err != nil {
		t.Fatal(err)
	}
	if err := m.EncUpdate(streamedCipher[16*2:], plaintext[16*2:], true); err != nil {
		t.Fatal(err)
	}
	streamedTag, err := m.AuthFinalize(16)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(oneShotCipher, streamedCipher) {
		t.Fatalf("streamed ciphertext mismatch: %x vs %x", streamedCipher, oneShotCipher)
	}
	if !bytes.Equal(oneShotTag, streamedTag) {
		t.Fatalf("streamed tag mismatch: %x vs %x", streamedTag, oneShotTag)
	}
}
