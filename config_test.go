package gogost

import "testing"

func TestOpensslCompatibilityToggle(t *testing.T) {
	before := OpensslCompatibility()
	defer SetOpensslCompatibility(before)

	SetOpensslCompatibility(true)
	if !OpensslCompatibility() {
		t.Fatal("expected compatibility flag to be set")
	}
	SetOpensslCompatibility(false)
	if OpensslCompatibility() {
		t.Fatal("expected compatibility flag to be cleared")
	}
}

func TestSetDefaultResource(t *testing.T) {
	before := DefaultResource(AlgMagma)
	defer SetDefaultResource(AlgMagma, before)

	if err := SetDefaultResource(AlgMagma, 12345); err != nil {
		t.Fatal(err)
	}
	if got := DefaultResource(AlgMagma); got != 12345 {
		t.Fatalf("DefaultResource(AlgMagma) = %d, want 12345", got)
	}
}

func TestSetDefaultResourceRejectsNonPositive(t *testing.T) {
	if err := SetDefaultResource(AlgKuznechik, 0); err == nil {
		t.Fatal("expected error for non-positive resource budget")
	}
}

func TestSetDefaultResourceRejectsUnknownAlgorithm(t *testing.T) {
	if err := SetDefaultResource(AlgorithmID(200), 10); err == nil {
		t.Fatal("expected error for unknown algorithm identifier")
	}
}

func TestAlgorithmIDString(t *testing.T) {
	cases := map[AlgorithmID]string{
		AlgMagma:           "magma",
		AlgKuznechik:       "kuznechik",
		AlgHMACStreebog256: "hmac-streebog-256",
		AlgUnknown:         "unknown",
	}
	for alg, want := range cases {
		if got := alg.String(); got != want {
			t.Fatalf("%v.String() = %q, want %q", alg, got, want)
		}
	}
}
