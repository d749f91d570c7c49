package services

import (
	"math"

	"github.com/yungbote/storefront-backend/internal/types"
)

// Pricing rules. Thresholds are strict greater-than: a subtotal of exactly
// 100 still pays shipping, exactly 200 still gets no discount.
const (
	freeShippingThreshold = 100.0
	flatShippingFee       = 10.0
	taxRate               = 0.10
	discountThreshold     = 200.0
	discountRate          = 0.05
)

// ComputeSummary derives the order pricing breakdown from a cart snapshot.
// It is a pure function and the only place the formula lives — the cart view
// and the payment view both read this result instead of recomputing any part
// of it. Monetary fields are rounded half-up to two decimals at output only;
// intermediates stay unrounded.
func ComputeSummary(items []types.CartItem) types.OrderSummary {
	var subtotal float64
	itemCount := 0
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
		itemCount += item.Quantity
	}

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate
	discount := 0.0
	if subtotal > discountThreshold {
		discount = subtotal * discountRate
	}
	total := subtotal + shipping + tax - discount

	return types.OrderSummary{
		Subtotal:              round2(subtotal),
		Shipping:              round2(shipping),
		Tax:                   round2(tax),
		Discount:              round2(discount),
		Total:                 round2(total),
		ItemCount:             itemCount,
		FreeShippingThreshold: freeShippingThreshold,
		DiscountThreshold:     discountThreshold,
		DiscountRate:          discountRate * 100,
		TaxRate:               taxRate * 100,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
