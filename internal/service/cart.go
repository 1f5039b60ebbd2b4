package service

import (
	"context"
	"errors"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/logger"
	"consult-hub/internal/util"

	"go.uber.org/zap"
)

// CartService defines the shopping cart operations.
type CartService interface {
	CreateCart(ctx context.Context) (*dto.CartResponse, error)
	GetCart(ctx context.Context, cartID string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, cartID string, req dto.AddCartItemRequest) (*dto.CartResponse, error)
	SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*dto.CartResponse, error)
	ClearCart(ctx context.Context, cartID string) (*dto.CartResponse, error)
}

type cartService struct {
	content domain.ContentStore
	carts   *stateStore[domain.Cart]
	now     func() time.Time
}

// NewCartService creates a cart service storing carts in cache for ttl.
func NewCartService(content domain.ContentStore, cache domain.Cache, ttl time.Duration) CartService {
	return &cartService{
		content: content,
		carts:   newCartStore(cache, ttl),
		now:     time.Now,
	}
}

func (s *cartService) CreateCart(ctx context.Context) (*dto.CartResponse, error) {
	now := s.now()
	cart := domain.NewCart(util.NewULIDAt(now), now)
	if err := s.carts.Put(ctx, cart.ID, cart); err != nil {
		return nil, err
	}
	logger.Get().Debug("Cart created", zap.String("cart_id", cart.ID))
	return toCartResponse(cart), nil
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*dto.CartResponse, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// AddItem adds req.Quantity units, one when unset.
func (s *cartService) AddItem(ctx context.Context, cartID string, req dto.AddCartItemRequest) (*dto.CartResponse, error) {
	return s.apply(ctx, cartID, domain.AddToCart{ProductID: req.ProductID, Quantity: req.Quantity})
}

func (s *cartService) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*dto.CartResponse, error) {
	return s.apply(ctx, cartID, domain.SetCartQuantity{ProductID: productID, Quantity: quantity})
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, productID string) (*dto.CartResponse, error) {
	return s.apply(ctx, cartID, domain.RemoveFromCart{ProductID: productID})
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) (*dto.CartResponse, error) {
	return s.apply(ctx, cartID, domain.ClearCart{})
}

func (s *cartService) load(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, errStateNotFound) {
			return nil, domain.NewCartNotFoundError(cartID)
		}
		return nil, err
	}
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return cart, nil
}

func (s *cartService) apply(ctx context.Context, cartID string, action domain.CartAction) (*dto.CartResponse, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	next, err := domain.ApplyCart(cart, s.content.Product, action, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.carts.Put(ctx, next.ID, next); err != nil {
		return nil, err
	}
	return toCartResponse(next), nil
}

func toCartResponse(c *domain.Cart) *dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, dto.CartLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
			LineTotalCents: l.UnitPriceCents * int64(l.Quantity),
		})
	}
	return &dto.CartResponse{
		ID:            c.ID,
		Lines:         lines,
		ItemCount:     c.ItemCount(),
		SubtotalCents: c.SubtotalCents(),
		UpdatedAt:     c.UpdatedAt,
	}
}
