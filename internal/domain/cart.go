package domain

import "time"

// --- Cart Entities ---

// CartLine is one entry in a shopping cart. The embedded Listing is a
// snapshot taken when the line was added, so the displayed title and price
// stay stable against later catalog changes.
type CartLine struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	Listing   Listing   `json:"listing"`
	Quantity  int       `json:"quantity"` // always >= 1; zero removes the line
	AddedAt   time.Time `json:"addedAt"`
}

type Cart struct {
	Lines  []CartLine `json:"lines"`
	Totals CartTotals `json:"totals"`
}

type CartTotals struct {
	Subtotal    Money `json:"subtotal"`
	ShippingFee Money `json:"shippingFee"`
	Total       Money `json:"total"`
}
