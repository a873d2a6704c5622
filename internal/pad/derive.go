package pad

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20"
)

// ErrWeakPassphrase is returned when a passphrase does not meet the policy's
// minimum length and AllowWeak is not set.
var ErrWeakPassphrase = errors.New("weak passphrase")

// DerivePolicy controls how a shared passphrase is stretched into pad digits.
// Argon2id makes each guess expensive; the minimum length keeps trivially
// guessable phrases out unless the caller explicitly allows them.
//
// A derived pad is only as strong as the passphrase behind it. When both
// parties can exchange a truly random pad out of band, GenerateKey remains
// the right tool; DeriveKey trades that guarantee for convenience.
type DerivePolicy struct {
	MemMB     uint32 // Argon2id memory in MB
	Time      uint32 // Argon2id iterations
	Parallel  uint8  // Argon2id parallelism
	MinRunes  int    // minimum passphrase length in runes
	AllowWeak bool   // bypass the minimum-length check
}

// DefaultDerivePolicy returns parameters that make offline guessing costly on
// commodity hardware while staying usable on low-RAM hosts.
func DefaultDerivePolicy() DerivePolicy {
	return DerivePolicy{
		MemMB:    64,
		Time:     3,
		Parallel: 1,
		MinRunes: 16,
	}
}

// deriveSalt is fixed and domain-separated so the same passphrase does not
// collide with other tools' key derivation.
var deriveSalt = []byte("OnetimeNotepad/v1/argon2id/domain-sep")

// DeriveKey stretches a passphrase into length pad digits in [0, Modulus).
//
// Behavior:
//  1. Enforce the policy's minimum passphrase length (runes, not bytes).
//  2. Argon2id with the policy parameters and the fixed domain salt yields a
//     32-byte seed, canonicalized through SHA-256.
//  3. A ChaCha20 stream keyed by the seed is sampled bytewise; bytes of 200
//     and above are rejected so the remaining values fold uniformly onto
//     [0, Modulus) via b mod 100.
//
// The same passphrase and policy always produce the same digits, so two
// parties holding the phrase can reconstruct the pad independently.
func DeriveKey(passphrase string, length int, policy DerivePolicy) ([]int, error) {
	if length < 0 {
		return nil, fmt.Errorf("key length must be non-negative, got %d", length)
	}

	pass := strings.TrimSpace(passphrase)
	minRunes := policy.MinRunes
	if minRunes == 0 {
		minRunes = 16
	}
	if !policy.AllowWeak && utf8.RuneCountInString(pass) < minRunes {
		return nil, fmt.Errorf("%w: need %d+ characters", ErrWeakPassphrase, minRunes)
	}

	mem := policy.MemMB
	if mem == 0 {
		mem = 64
	}
	time := policy.Time
	if time == 0 {
		time = 3
	}
	par := policy.Parallel
	if par == 0 {
		par = 1
	}

	derived := argon2.IDKey([]byte(pass), deriveSalt, time, mem*1024, par, 32)
	seed := sha256.Sum256(derived)

	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("init keystream: %w", err)
	}

	key := make([]int, 0, length)
	buf := make([]byte, 64)
	for len(key) < length {
		for i := range buf {
			buf[i] = 0
		}
		stream.XORKeyStream(buf, buf)
		for _, b := range buf {
			if b >= 2*Modulus {
				continue
			}
			key = append(key, int(b)%Modulus)
			if len(key) == length {
				break
			}
		}
	}
	return key, nil
}
