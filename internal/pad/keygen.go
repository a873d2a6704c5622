package pad

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

var digitRange = big.NewInt(Modulus)

// GenerateKey draws length uniformly distributed digits in [0, Modulus) from
// the system's secure entropy source. The only failure mode beyond a negative
// length is an unavailable entropy source, which callers should treat as
// fatal.
func GenerateKey(length int) ([]int, error) {
	if length < 0 {
		return nil, fmt.Errorf("key length must be non-negative, got %d", length)
	}
	key := make([]int, length)
	for i := range key {
		n, err := crand.Int(crand.Reader, digitRange)
		if err != nil {
			return nil, fmt.Errorf("entropy source unavailable: %w", err)
		}
		key[i] = int(n.Int64())
	}
	return key, nil
}
