package types

// Product is the catalog representation consumed by UI clients before an item
// reaches the cart. The shape mirrors the product API and is not validated
// beyond decoding.
type Product struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Thumbnail          string  `json:"thumbnail"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
}
