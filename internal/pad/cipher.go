package pad

import (
	"errors"
	"fmt"
)

// ErrInsufficientKey is returned when a key holds fewer digits than the
// sequence it is paired with. There is no recovery short of a longer key.
var ErrInsufficientKey = errors.New("insufficient key length")

// Encrypt applies the pad to a code sequence: cipher[i] = (codes[i]+key[i]) mod 100.
// The key must be at least as long as the codes; trailing excess is ignored.
func Encrypt(codes, key []int) ([]int, error) {
	if len(key) < len(codes) {
		return nil, fmt.Errorf("%w: message needs %d digits, key has %d", ErrInsufficientKey, len(codes), len(key))
	}
	out := make([]int, len(codes))
	for i, c := range codes {
		out[i] = (c + key[i]) % Modulus
	}
	return out, nil
}

// Decrypt is the exact inverse of Encrypt. The +Modulus term keeps the
// subtraction result non-negative before reduction.
func Decrypt(cipher, key []int) ([]int, error) {
	if len(key) < len(cipher) {
		return nil, fmt.Errorf("%w: ciphertext needs %d digits, key has %d", ErrInsufficientKey, len(cipher), len(key))
	}
	out := make([]int, len(cipher))
	for i, c := range cipher {
		out[i] = (c - key[i] + Modulus) % Modulus
	}
	return out, nil
}

// EncryptMessage normalizes and encodes text, then applies the pad.
func EncryptMessage(text string, key []int) ([]int, error) {
	return Encrypt(Encode(Normalize(text)), key)
}

// DecryptMessage strips the pad from a cipher sequence and decodes the
// recovered codes into a letter stream, word boundaries restored from the
// separator code.
func DecryptMessage(cipher, key []int) (string, error) {
	codes, err := Decrypt(cipher, key)
	if err != nil {
		return "", err
	}
	return Decode(codes), nil
}
