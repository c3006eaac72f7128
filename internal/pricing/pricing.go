// Package pricing derives cart totals. The calculator is pure: the same
// lines and policy always produce the same totals.
package pricing

import "preloved-backend/internal/domain"

// Calculator applies the shipping policy to a cart. Threshold and fee come
// from configuration so the policy can change without touching this logic.
type Calculator struct {
	freeShippingThreshold domain.Money
	shippingFee           domain.Money
}

func NewCalculator(freeShippingThreshold, shippingFee domain.Money) *Calculator {
	return &Calculator{
		freeShippingThreshold: freeShippingThreshold,
		shippingFee:           shippingFee,
	}
}

// Totals computes subtotal, shipping and total for the given lines.
// Shipping is waived only when the subtotal strictly exceeds the threshold,
// so an empty cart is charged the flat fee.
func (c *Calculator) Totals(lines []domain.CartLine) domain.CartTotals {
	var subtotal domain.Money
	for _, line := range lines {
		subtotal += line.Listing.Price * domain.Money(line.Quantity)
	}

	fee := c.shippingFee
	if subtotal > c.freeShippingThreshold {
		fee = 0
	}

	return domain.CartTotals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}
}
