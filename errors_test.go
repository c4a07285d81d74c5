package gogost

import "testing"

func TestErrorFormatting(t *testing.T) {
	err := NewError(KindWrongLength, "modes.CTR.Encrypt", "src", "length must be a multiple of block size")
	want := "modes.CTR.Encrypt: wrong_length: src: length must be a multiple of block size"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestKindOf(t *testing.T) {
	err := NewError(KindNotEqualData, "aead.MGM.Open", "", "")
	kind, ok := KindOf(err)
	if !ok || kind != KindNotEqualData {
		t.Fatalf("KindOf = %v, %v", kind, ok)
	}
}

func TestIs(t *testing.T) {
	err := WrapError(KindLowKeyResource, "ciphers.Key.SetKey", ErrLowResource)
	if !Is(err, KindLowKeyResource) {
		t.Fatal("expected Is to match wrapped kind")
	}
	if Is(err, KindOverflow) {
		t.Fatal("expected Is to reject non-matching kind")
	}
}

func TestUnwrap(t *testing.T) {
	inner := ErrNotEqualData
	wrapped := WrapError(KindNotEqualData, "aead.DecryptMGM", inner)
	e, ok := wrapped.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}
	if e.Unwrap() == nil {
		t.Fatal("expected Unwrap to return the wrapped error")
	}
}
