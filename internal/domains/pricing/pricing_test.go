package pricing_test

import (
	"bookit/config"
	"bookit/internal/domains/pricing"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCalculator() pricing.Calculator {
	return pricing.NewCalculator(6, map[string]pricing.Rule{
		"SAVE10":  {Kind: pricing.RuleKindPercent, Value: 10},
		"FLAT100": {Kind: pricing.RuleKindFlat, Value: 100},
		"FIRST20": {Kind: pricing.RuleKindPercent, Value: 20},
	})
}

func TestCalculator_Quote(t *testing.T) {
	calc := defaultCalculator()

	tests := []struct {
		name     string
		price    int
		quantity int
		code     string
		expected pricing.Breakdown
	}{
		{
			name:     "percentage code",
			price:    1000,
			quantity: 1,
			code:     "SAVE10",
			expected: pricing.Breakdown{UnitPrice: 1000, Quantity: 1, Subtotal: 1000, Taxes: 60, Discount: 100, Total: 960, PromoCode: "SAVE10", PromoApplied: true},
		},
		{
			name:     "flat code",
			price:    1000,
			quantity: 1,
			code:     "FLAT100",
			expected: pricing.Breakdown{UnitPrice: 1000, Quantity: 1, Subtotal: 1000, Taxes: 60, Discount: 100, Total: 960, PromoCode: "FLAT100", PromoApplied: true},
		},
		{
			name:     "unknown code",
			price:    1000,
			quantity: 1,
			code:     "BOGUS",
			expected: pricing.Breakdown{UnitPrice: 1000, Quantity: 1, Subtotal: 1000, Taxes: 60, Discount: 0, Total: 1060},
		},
		{
			name:     "lower case code",
			price:    999,
			quantity: 3,
			code:     " first20 ",
			expected: pricing.Breakdown{UnitPrice: 999, Quantity: 3, Subtotal: 2997, Taxes: 180, Discount: 599, Total: 2578, PromoCode: "FIRST20", PromoApplied: true},
		},
		{
			name:     "flat code not scaled by quantity",
			price:    500,
			quantity: 4,
			code:     "flat100",
			expected: pricing.Breakdown{UnitPrice: 500, Quantity: 4, Subtotal: 2000, Taxes: 120, Discount: 100, Total: 2020, PromoCode: "FLAT100", PromoApplied: true},
		},
		{
			name:     "flat discount larger than the charge brings total to zero",
			price:    40,
			quantity: 1,
			code:     "FLAT100",
			expected: pricing.Breakdown{UnitPrice: 40, Quantity: 1, Subtotal: 40, Taxes: 2, Discount: 42, Total: 0, PromoCode: "FLAT100", PromoApplied: true},
		},
		{
			name:     "flat discount between subtotal and total",
			price:    95,
			quantity: 1,
			code:     "FLAT100",
			expected: pricing.Breakdown{UnitPrice: 95, Quantity: 1, Subtotal: 95, Taxes: 6, Discount: 100, Total: 1, PromoCode: "FLAT100", PromoApplied: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Quote(tt.price, tt.quantity, tt.code))
		})
	}
}

func TestCalculator_Quote_NoCode(t *testing.T) {
	calc := defaultCalculator()

	for _, price := range []int{1, 7, 99, 250, 1499, 3333} {
		for quantity := 1; quantity <= 8; quantity++ {
			got := calc.Quote(price, quantity, "")
			subtotal := price * quantity

			assert.Equal(t, subtotal, got.Subtotal)
			assert.Equal(t, pricing.Percent(subtotal, 6), got.Taxes)
			assert.Equal(t, 0, got.Discount)
			assert.Equal(t, subtotal+got.Taxes, got.Total)
			assert.False(t, got.PromoApplied)
		}
	}
}

func TestCalculator_Discount(t *testing.T) {
	calc := defaultCalculator()

	tests := []struct {
		name     string
		code     string
		subtotal int
		expected int
		ok       bool
	}{
		{name: "percentage", code: "SAVE10", subtotal: 2000, expected: 200, ok: true},
		{name: "flat below subtotal", code: "FLAT100", subtotal: 1500, expected: 100, ok: true},
		{name: "flat above subtotal is not capped", code: "FLAT100", subtotal: 50, expected: 100, ok: true},
		{name: "unknown", code: "SUMMER-SALE", subtotal: 1500},
		{name: "empty", code: "  ", subtotal: 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, ok := calc.Discount(tt.code, tt.subtotal)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, discount)
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		amount, pct, expected int
	}{
		{amount: 1000, pct: 6, expected: 60},
		{amount: 25, pct: 6, expected: 2},    // 1.5 rounds up
		{amount: 75, pct: 6, expected: 5},    // 4.5 rounds up
		{amount: 74, pct: 6, expected: 4},    // 4.44
		{amount: 2997, pct: 20, expected: 599}, // 599.4
		{amount: 0, pct: 10, expected: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pricing.Percent(tt.amount, tt.pct), "%d * %d%%", tt.amount, tt.pct)
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		raw       string
		expected  pricing.Rule
		expectErr bool
	}{
		{raw: "10%", expected: pricing.Rule{Kind: pricing.RuleKindPercent, Value: 10}},
		{raw: " 100 ", expected: pricing.Rule{Kind: pricing.RuleKindFlat, Value: 100}},
		{raw: "abc", expectErr: true},
		{raw: "150%", expectErr: true},
		{raw: "-5", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rule, err := pricing.ParseRule(tt.raw)

			if tt.expectErr {
				assert.ErrorIs(t, err, pricing.ErrInvalidRule)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, rule)
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Pricing.TaxPercent = 6
	cfg.App.PromoCodes = map[string]string{
		"save10":  "10%",
		"FLAT100": "100",
		"BROKEN":  "ten",
	}

	calc := pricing.New(cfg)

	discount, ok := calc.Discount("SAVE10", 1000)
	assert.True(t, ok)
	assert.Equal(t, 100, discount)

	discount, ok = calc.Discount("BROKEN", 1000)
	assert.False(t, ok)
	assert.Equal(t, 0, discount)

	_, ok = calc.Discount("", 1000)
	assert.False(t, ok)
}
