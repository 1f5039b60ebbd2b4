package dto

import "time"

// AddCartItemRequest adds a product to a cart. Quantity defaults to 1.
// @Description Request body for adding a cart item
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SetCartQuantityRequest replaces a line's quantity; 0 removes the line
// @Description Request body for updating a cart line
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one line of a cart
type CartLineResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// CartResponse is a cart with its totals
// @Description Shopping cart
type CartResponse struct {
	ID            string             `json:"id"`
	Lines         []CartLineResponse `json:"lines"`
	ItemCount     int                `json:"item_count"`
	SubtotalCents int64              `json:"subtotal_cents"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
