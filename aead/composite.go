package aead

import (
	"crypto/subtle"

	"github.com/absfs/gogost/ciphers"
	"github.com/absfs/gogost/mac"
	"github.com/absfs/gogost/modes"
)

// EncryptCTRCMAC composes CTR encryption under encKey with a CMAC over
// AD‖ciphertext under macKey (spec section 4.6). The one-shot form
// requires ad and plaintext to be adjacent in a single contiguous
// buffer; callers that cannot guarantee that should drive CTR and CMAC
// directly through package modes and package mac instead.
func EncryptCTRCMAC(encKey, macKey *ciphers.Key, iv, adPlaintext []byte, adLen, tagSize int) (ciphertext, tag []byte, err error) {
	ad := adPlaintext[:adLen]
	plaintext := adPlaintext[adLen:]

	ciphertext = make([]byte, len(plaintext))
	if err := modes.EncryptCTR(encKey, ciphertext, plaintext, iv); err != nil {
		return nil, nil, err
	}

	authInput := make([]byte, len(ad)+len(ciphertext))
	copy(authInput, ad)
	copy(authInput[len(ad):], ciphertext)
	full, err := mac.Sum(macKey, authInput)
	if err != nil {
		return nil, nil, err
	}
	if tagSize > len(full) {
		tagSize = len(full)
	}
	return ciphertext, full[:tagSize], nil
}

// DecryptCTRCMAC is the inverse: decryption happens before MAC
// verification (spec section 4.6), but the returned plaintext must be
// discarded by the caller if the error is non-nil.
func DecryptCTRCMAC(encKey, macKey *ciphers.Key, iv, adCiphertext []byte, adLen int, tag []byte) (plaintext []byte, err error) {
	ad := adCiphertext[:adLen]
	ciphertext := adCiphertext[adLen:]

	plaintext = make([]byte, len(ciphertext))
	if err := modes.DecryptCTR(encKey, plaintext, ciphertext, iv); err != nil {
		return plaintext, err
	}

	authInput := make([]byte, len(ad)+len(ciphertext))
	copy(authInput, ad)
	copy(authInput[len(ad):], ciphertext)
	full, err := mac.Sum(macKey, authInput)
	if err != nil {
		return plaintext, err
	}
	if len(tag) > len(full) || subtle.ConstantTimeCompare(full[:len(tag)], tag) != 1 {
		return plaintext, errNotEqualData
	}
	return plaintext, nil
}

// EncryptCTRHMAC composes CTR encryption with an HMAC/NMAC authenticator
// in place of CMAC.
func EncryptCTRHMAC(encKey *ciphers.Key, hmacKey *mac.HMACKey, iv, adPlaintext []byte, adLen, tagSize int) (ciphertext, tag []byte, err error) {
	ad := adPlaintext[:adLen]
	plaintext := adPlaintext[adLen:]

	ciphertext = make([]byte, len(plaintext))
	if err := modes.EncryptCTR(encKey, ciphertext, plaintext, iv); err != nil {
		return nil, nil, err
	}

	authInput := make([]byte, len(ad)+len(ciphertext))
	copy(authInput, ad)
	copy(authInput[len(ad):], ciphertext)
	full, err := hmacKey.Compute(authInput)
	if err != nil {
		return nil, nil, err
	}
	if tagSize > len(full) {
		tagSize = len(full)
	}
	return ciphertext, full[:tagSize], nil
}

// DecryptCTRHMAC is the CTR-HMAC inverse.
func DecryptCTRHMAC(encKey *ciphers.Key, hmacKey *mac.HMACKey, iv, adCiphertext []byte, adLen int, tag []byte) (plaintext []byte, err error) {
	ad := adCiphertext[:adLen]
	ciphertext := adCiphertext[adLen:]

	plaintext = make([]byte, len(ciphertext))
	if err := modes.DecryptCTR(encKey, plaintext, ciphertext, iv); err != nil {
		return plaintext, err
	}

	authInput := make([]byte, len(ad)+len(ciphertext))
	copy(authInput, ad)
	copy(authInput[len(ad):], ciphertext)
	full, err := hmacKey.Compute(authInput)
	if err != nil {
		return plaintext, err
	}
	if len(tag) > len(full) || subtle.ConstantTimeCompare(full[:len(tag)], tag) != 1 {
		return plaintext, errNotEqualData
	}
	return plaintext, nil
}
