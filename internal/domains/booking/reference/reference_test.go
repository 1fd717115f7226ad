package reference_test

import (
	"bookit/internal/domains/booking/reference"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		code, err := reference.Generate()
		require.NoError(t, err)

		assert.True(t, reference.Valid(code), "unexpected shape %q", code)

		seen[code] = struct{}{}
	}

	// 36^8 codes; a collision in 1000 draws would point at a broken generator.
	assert.Len(t, seen, 1000)
}

func TestGenerate_UsesWholeAlphabet(t *testing.T) {
	counts := map[rune]int{}

	for range 2000 {
		code, err := reference.Generate()
		require.NoError(t, err)

		for _, r := range code {
			counts[r]++
		}
	}

	for _, r := range reference.Alphabet {
		assert.Positive(t, counts[r], "symbol %q never drawn", r)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{code: "AB12CD34", valid: true},
		{code: "ab12cd34", valid: false},
		{code: "AB12CD3", valid: false},
		{code: "AB12CD345", valid: false},
		{code: "AB12-D34", valid: false},
		{code: strings.Repeat("Z", 8), valid: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, reference.Valid(tt.code), tt.code)
	}
}
