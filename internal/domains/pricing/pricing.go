// Package pricing turns a unit price, a quantity and an optional promo code into a
// price breakdown. It has no I/O; the promo table is injected.
package pricing

import (
	"bookit/config"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	percentSuffix = "%"
	hundred       = 100
)

var ErrInvalidRule = errors.New("invalid promo rule")

type RuleKind string

const (
	RuleKindPercent RuleKind = "percent"
	RuleKindFlat    RuleKind = "flat"
)

// Rule is one promo table entry. Value is a percentage or a flat amount.
type Rule struct {
	Kind  RuleKind
	Value int
}

// Apply returns the rule's discount for subtotal. A flat amount is returned as is,
// even when it exceeds subtotal.
func (r Rule) Apply(subtotal int) int {
	switch r.Kind {
	case RuleKindPercent:
		return Percent(subtotal, r.Value)
	case RuleKindFlat:
		return r.Value
	default:
		return 0
	}
}

type Breakdown struct {
	UnitPrice    int    `json:"unitPrice"`
	Quantity     int    `json:"quantity"`
	Subtotal     int    `json:"subtotal"`
	Taxes        int    `json:"taxes"`
	Discount     int    `json:"discount"`
	Total        int    `json:"total"`
	PromoCode    string `json:"promoCode,omitempty"`
	PromoApplied bool   `json:"promoApplied"`
}

type Calculator interface {
	Quote(price, quantity int, code string) Breakdown
	Discount(code string, subtotal int) (amount int, ok bool)
}

type calculatorImpl struct {
	taxPercent int
	rules      map[string]Rule
}

// New builds the calculator from APP_PRICING_TAX_PERCENT and APP_PROMO_CODES.
// Malformed promo rules are skipped.
func New(cfg *config.Config) Calculator {
	rules, errs := ParseRules(cfg.App.PromoCodes)
	for _, err := range errs {
		log.Warn().Err(err).Msg("skipping promo code")
	}

	log.Debug().Int("promoCodes", len(rules)).Int("taxPercent", cfg.App.Pricing.TaxPercent).Msg("pricing initialized")

	return NewCalculator(cfg.App.Pricing.TaxPercent, rules)
}

func NewCalculator(taxPercent int, rules map[string]Rule) Calculator {
	normalized := make(map[string]Rule, len(rules))
	for code, rule := range rules {
		normalized[NormalizeCode(code)] = rule
	}

	return &calculatorImpl{
		taxPercent: taxPercent,
		rules:      normalized,
	}
}

// Quote caps the discount at subtotal plus taxes so a charged total is never negative.
func (c *calculatorImpl) Quote(price, quantity int, code string) Breakdown {
	subtotal := price * quantity
	taxes := Percent(subtotal, c.taxPercent)

	discount, ok := c.Discount(code, subtotal)
	discount = min(discount, subtotal+taxes)

	res := Breakdown{
		UnitPrice:    price,
		Quantity:     quantity,
		Subtotal:     subtotal,
		Taxes:        taxes,
		Discount:     discount,
		Total:        subtotal + taxes - discount,
		PromoApplied: ok,
	}

	if ok {
		res.PromoCode = NormalizeCode(code)
	}

	return res
}

// Discount reports (0, false) for an empty or unknown code.
func (c *calculatorImpl) Discount(code string, subtotal int) (int, bool) {
	code = NormalizeCode(code)
	if code == "" {
		return 0, false
	}

	rule, ok := c.rules[code]
	if !ok {
		return 0, false
	}

	return rule.Apply(subtotal), true
}

// Percent computes round(amount*pct/100), rounding halves away from zero.
func Percent(amount, pct int) int {
	product := amount * pct
	if product < 0 {
		return -((-product + hundred/2) / hundred)
	}

	return (product + hundred/2) / hundred
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseRule accepts "N%" (percentage off) or "N" (flat amount off).
func ParseRule(raw string) (Rule, error) {
	raw = strings.TrimSpace(raw)

	kind := RuleKindFlat
	if strings.HasSuffix(raw, percentSuffix) {
		kind = RuleKindPercent
		raw = strings.TrimSuffix(raw, percentSuffix)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: %w", ErrInvalidRule, raw, err)
	}

	if value < 0 || (kind == RuleKindPercent && value > hundred) {
		return Rule{}, fmt.Errorf("%w %q: out of range", ErrInvalidRule, raw)
	}

	return Rule{Kind: kind, Value: value}, nil
}

func ParseRules(raw map[string]string) (map[string]Rule, []error) {
	rules := make(map[string]Rule, len(raw))

	var errs []error

	for code, value := range raw {
		rule, err := ParseRule(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("promo code %s: %w", code, err))

			continue
		}

		rules[NormalizeCode(code)] = rule
	}

	return rules, errs
}
