package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericCode generates a cryptographically secure numeric code of
// the given number of digits, zero-padded. Used for link verification codes
// the user types into the dashboard.
func GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("digits must be positive")
	}
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random int: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
