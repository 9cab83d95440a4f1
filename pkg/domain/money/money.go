// Package money provides the fixed-precision monetary value used throughout
// the ledger. Amounts are stored as an integer count of minor units (cents),
// which keeps balance arithmetic exact; binary floating point never touches
// the books.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minibank/ledger/pkg/domain"
)

// Decimals is the minor-unit granularity. The ledger is single-currency
// with two decimal places.
const Decimals = 2

const centsPerUnit = 100

// Money represents a monetary value as a count of minor units.
// The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// New creates a Money value from a count of minor units.
func New(cents int64) Money {
	return Money{cents: cents}
}

// Zero returns a zero monetary value.
func Zero() Money {
	return Money{}
}

// Parse converts user-supplied decimal text (e.g. "12.34", "100", "0.5")
// into a Money value. Malformed input is rejected with ErrInvalidAmount:
// empty strings, signs, non-digits, more than one decimal point, or more
// decimal places than the minor-unit granularity allows. Nothing is ever
// silently truncated.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty input", domain.ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, fmt.Errorf("%w: signed input %q", domain.ErrInvalidAmount, s)
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac && fracPart == "" {
		return Money{}, fmt.Errorf("%w: trailing decimal point in %q", domain.ErrInvalidAmount, s)
	}
	if len(fracPart) > Decimals {
		return Money{}, fmt.Errorf("%w: more than %d decimal places in %q", domain.ErrInvalidAmount, Decimals, s)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return Money{}, fmt.Errorf("%w: %q is not a decimal number", domain.ErrInvalidAmount, s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	if units > math.MaxInt64/centsPerUnit {
		return Money{}, fmt.Errorf("%w: %q exceeds the representable range", domain.ErrInvalidAmount, s)
	}

	var frac int64
	for i := 0; i < Decimals; i++ {
		frac *= 10
		if i < len(fracPart) {
			frac += int64(fracPart[i] - '0')
		}
	}

	cents := units * centsPerUnit
	if cents > math.MaxInt64-frac {
		return Money{}, fmt.Errorf("%w: %q exceeds the representable range", domain.ErrInvalidAmount, s)
	}
	return Money{cents: cents + frac}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount in main units for display purposes only.
// Never feed this back into balance arithmetic.
func (m Money) Float() float64 {
	return float64(m.cents) / centsPerUnit
}

// Add returns the sum of two amounts, failing if the result would overflow.
func (m Money) Add(other Money) (Money, error) {
	if other.cents > 0 && m.cents > math.MaxInt64-other.cents {
		return Money{}, fmt.Errorf("%w: addition overflows", domain.ErrInvalidAmount)
	}
	if other.cents < 0 && m.cents < math.MinInt64-other.cents {
		return Money{}, fmt.Errorf("%w: addition overflows", domain.ErrInvalidAmount)
	}
	return Money{cents: m.cents + other.cents}, nil
}

// Subtract returns the difference of two amounts, failing on overflow.
func (m Money) Subtract(other Money) (Money, error) {
	return m.Add(Money{cents: -other.cents})
}

// Equals reports whether two amounts are equal.
func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String renders the amount as decimal text, e.g. "12.34".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/centsPerUnit, cents%centsPerUnit)
}
