package domain

import "time"

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 99

// CartLine is one product in a cart. Quantity is always >= 1.
type CartLine struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// Cart is a session-scoped shopping cart. Lines keep first-added order.
type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart.
func NewCart(id string, now time.Time) *Cart {
	return &Cart{ID: id, Lines: []CartLine{}, UpdatedAt: now}
}

// ItemCount is the total quantity across lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// SubtotalCents is the sum of line totals.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPriceCents * int64(l.Quantity)
	}
	return total
}

func (c *Cart) indexOf(productID string) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) clone() *Cart {
	out := &Cart{ID: c.ID, Lines: make([]CartLine, len(c.Lines)), UpdatedAt: c.UpdatedAt}
	copy(out.Lines, c.Lines)
	return out
}

// ProductLookup resolves a product id against the static catalog.
type ProductLookup func(id string) (Product, bool)

// CartAction mutates a cart through ApplyCart.
type CartAction interface {
	applyCart(c *Cart, lookup ProductLookup) error
}

// AddToCart adds Quantity units, merging with an existing line.
type AddToCart struct {
	ProductID string
	Quantity  int
}

// SetCartQuantity replaces a line's quantity; zero or less removes it.
type SetCartQuantity struct {
	ProductID string
	Quantity  int
}

// RemoveFromCart drops a line.
type RemoveFromCart struct {
	ProductID string
}

// ClearCart empties the cart.
type ClearCart struct{}

// ApplyCart returns the cart after action; c itself is left untouched.
func ApplyCart(c *Cart, lookup ProductLookup, action CartAction, now time.Time) (*Cart, error) {
	next := c.clone()
	if err := action.applyCart(next, lookup); err != nil {
		return c, err
	}
	next.UpdatedAt = now
	return next, nil
}

func (a AddToCart) applyCart(c *Cart, lookup ProductLookup) error {
	p, ok := lookup(a.ProductID)
	if !ok {
		return NewProductNotFoundError(a.ProductID)
	}
	qty := a.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return NewInvalidInputError("quantity must be positive")
	}
	if i := c.indexOf(p.ID); i >= 0 {
		merged := c.Lines[i].Quantity + qty
		if merged > MaxLineQuantity {
			return NewLineQuantityError(p.ID, merged, MaxLineQuantity)
		}
		c.Lines[i].Quantity = merged
		return nil
	}
	if qty > MaxLineQuantity {
		return NewLineQuantityError(p.ID, qty, MaxLineQuantity)
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Quantity:       qty,
	})
	return nil
}

func (a SetCartQuantity) applyCart(c *Cart, lookup ProductLookup) error {
	i := c.indexOf(a.ProductID)
	if i < 0 {
		if _, ok := lookup(a.ProductID); !ok {
			return NewProductNotFoundError(a.ProductID)
		}
		if a.Quantity <= 0 {
			return nil
		}
		return AddToCart{ProductID: a.ProductID, Quantity: a.Quantity}.applyCart(c, lookup)
	}
	if a.Quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return nil
	}
	if a.Quantity > MaxLineQuantity {
		return NewLineQuantityError(a.ProductID, a.Quantity, MaxLineQuantity)
	}
	c.Lines[i].Quantity = a.Quantity
	return nil
}

func (a RemoveFromCart) applyCart(c *Cart, _ ProductLookup) error {
	if i := c.indexOf(a.ProductID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
	return nil
}

func (ClearCart) applyCart(c *Cart, _ ProductLookup) error {
	c.Lines = []CartLine{}
	return nil
}
