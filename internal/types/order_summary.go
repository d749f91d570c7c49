package types

// OrderSummary is the derived pricing breakdown for the current cart. It is
// computed fresh from a cart snapshot, never stored and never mutated in
// place. The threshold fields are echoed so clients can render progress bars
// ("spend X more for free shipping") without hardcoding the rules.
type OrderSummary struct {
	Subtotal              float64 `json:"subtotal"`
	Shipping              float64 `json:"shipping"`
	Tax                   float64 `json:"tax"`
	Discount              float64 `json:"discount"`
	Total                 float64 `json:"total"`
	ItemCount             int     `json:"itemCount"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	DiscountThreshold     float64 `json:"discountThreshold"`
	DiscountRate          float64 `json:"discountRate"`
	TaxRate               float64 `json:"taxRate"`
}
