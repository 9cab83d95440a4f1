package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank/ledger/pkg/domain"
	"github.com/minibank/ledger/pkg/domain/money"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		cents int64
		valid bool
	}{
		{"integer", "100", 10000, true},
		{"two decimals", "12.34", 1234, true},
		{"one decimal", "0.5", 50, true},
		{"zero", "0", 0, true},
		{"zero with decimals", "0.00", 0, true},
		{"leading whitespace", "  7.25", 725, true},
		{"no integer part", ".99", 99, true},
		{"empty", "", 0, false},
		{"negative", "-5", 0, false},
		{"plus sign", "+5", 0, false},
		{"excess precision", "1.234", 0, false},
		{"two points", "1.2.3", 0, false},
		{"letters", "12a", 0, false},
		{"fraction letters", "1.x2", 0, false},
		{"trailing point", "5.", 0, false},
		{"comma separator", "12,34", 0, false},
		{"overflow", "92233720368547758079", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := money.Parse(tt.input)
			if !tt.valid {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a := money.New(1000)
	b := money.New(250)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), sum.Cents())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, int64(750), diff.Cents())

	_, err = money.New(math.MaxInt64).Add(money.New(1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestComparisons(t *testing.T) {
	t.Parallel()
	a := money.New(1000)
	b := money.New(250)

	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Equals(money.New(1000)))
	assert.True(t, a.IsPositive())
	assert.False(t, a.IsNegative())
	assert.True(t, money.Zero().IsZero())
	assert.True(t, money.New(-1).IsNegative())
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12.34", money.New(1234).String())
	assert.Equal(t, "0.05", money.New(5).String())
	assert.Equal(t, "100.00", money.New(10000).String())
	assert.Equal(t, "-3.50", money.New(-350).String())
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0.01", "12.34", "100.00", "9.90"} {
		m, err := money.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}
