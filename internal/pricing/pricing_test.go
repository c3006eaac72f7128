package pricing

import (
	"testing"

	"preloved-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

// Defaults: free shipping above 50.00, otherwise a flat 5.99.
func newDefaultCalculator() *Calculator {
	return NewCalculator(domain.Money(5000), domain.Money(599))
}

func line(priceCents int64, quantity int) domain.CartLine {
	return domain.CartLine{
		Listing:  domain.Listing{Price: domain.Money(priceCents)},
		Quantity: quantity,
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	totals := newDefaultCalculator().Totals(nil)

	assert.Equal(t, domain.Money(0), totals.Subtotal)
	assert.Equal(t, domain.Money(599), totals.ShippingFee)
	assert.Equal(t, domain.Money(599), totals.Total)
}

func TestTotalsShippingThreshold(t *testing.T) {
	calc := newDefaultCalculator()

	t.Run("BelowThreshold", func(t *testing.T) {
		totals := calc.Totals([]domain.CartLine{line(4599, 1)})
		assert.Equal(t, domain.Money(4599), totals.Subtotal)
		assert.Equal(t, domain.Money(599), totals.ShippingFee)
		assert.Equal(t, domain.Money(5198), totals.Total)
	})

	t.Run("ExactlyAtThreshold", func(t *testing.T) {
		// The boundary is exclusive: a subtotal of exactly 50.00 still pays
		totals := calc.Totals([]domain.CartLine{line(5000, 1)})
		assert.Equal(t, domain.Money(5000), totals.Subtotal)
		assert.Equal(t, domain.Money(599), totals.ShippingFee)
	})

	t.Run("AboveThreshold", func(t *testing.T) {
		totals := calc.Totals([]domain.CartLine{line(5001, 1)})
		assert.Equal(t, domain.Money(0), totals.ShippingFee)
		assert.Equal(t, domain.Money(5001), totals.Total)
	})
}

func TestTotalsQuantityMultiplication(t *testing.T) {
	totals := newDefaultCalculator().Totals([]domain.CartLine{
		line(4599, 2),
		line(1999, 1),
	})

	assert.Equal(t, domain.Money(11197), totals.Subtotal)
	assert.Equal(t, domain.Money(0), totals.ShippingFee)
}

func TestTotalsExactAccumulation(t *testing.T) {
	// 1000 lines of 0.10: float accumulation would drift, cents must not
	lines := make([]domain.CartLine, 1000)
	for i := range lines {
		lines[i] = line(10, 1)
	}

	totals := newDefaultCalculator().Totals(lines)
	assert.Equal(t, domain.Money(10000), totals.Subtotal)
	assert.Equal(t, domain.Money(0), totals.ShippingFee)
}

func TestTotalsZeroThresholdWaivesEverything(t *testing.T) {
	calc := NewCalculator(0, domain.Money(599))
	totals := calc.Totals([]domain.CartLine{line(1, 1)})
	assert.Equal(t, domain.Money(0), totals.ShippingFee)
}
