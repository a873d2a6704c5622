package pad

import "fmt"

// EncryptMessageVerified encrypts text and immediately verifies a full round
// trip by decrypting the result with the same key and comparing it against
// the direct decode of the normalized message. If verification fails for any
// reason, an error is returned and no cipher sequence is produced.
//
// The reference value is Decode(Encode(Normalize(text))), not the raw input:
// characters outside the alphabet are dropped during normalization, so the
// original text is not recoverable and never the comparison target.
func EncryptMessageVerified(text string, key []int) ([]int, error) {
	codes := Encode(Normalize(text))
	want := Decode(codes)

	cipher, err := Encrypt(codes, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt failed: %w", err)
	}

	got, err := DecryptMessage(cipher, key)
	if err != nil {
		return nil, fmt.Errorf("verify decrypt failed: %w", err)
	}
	if got != want {
		return nil, fmt.Errorf("round-trip mismatch: have %q, want %q", got, want)
	}
	return cipher, nil
}

// VerifyRoundTrip checks that encrypting and then decrypting text under key
// reproduces the normalized message exactly. It returns nil on success or a
// detailed error on any failure.
func VerifyRoundTrip(text string, key []int) error {
	_, err := EncryptMessageVerified(text, key)
	return err
}
