// Package reference generates human shareable booking codes.
package reference

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 8
)

var pattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generate draws Length symbols uniformly from Alphabet.
func Generate() (string, error) {
	code := make([]byte, Length)

	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate reference code: %w", err)
		}

		code[i] = Alphabet[n.Int64()]
	}

	return string(code), nil
}

// Valid reports whether code has the generated shape.
func Valid(code string) bool {
	return pattern.MatchString(code)
}
