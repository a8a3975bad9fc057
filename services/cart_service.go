package services

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"shop_backend/models"
)

// CartService operates on the caller-supplied cart mapping. Every
// operation is a pure function of (mapping, request); no cart state
// survives the call.
type CartService struct {
	products ProductRepository
}

func NewCartService(products ProductRepository) *CartService {
	return &CartService{products: products}
}

// AddToCart adds quantity for a product that must exist in storage.
// If the product is already in the cart the quantity is additive.
func (s *CartService) AddToCart(cart models.Cart, productID, quantity int) (models.Cart, error) {
	product, err := s.products.GetByID(uint(productID))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Product with id %d not found", productID))
	}

	if cart == nil {
		cart = models.Cart{}
	}
	cart[productID] += quantity
	return cart, nil
}

// UpdateCartItem replaces the quantity of an item already in the cart.
// The check is against the mapping, not storage: updating an item the
// cart does not hold is rejected even if the product exists.
func (s *CartService) UpdateCartItem(cart models.Cart, productID, quantity int) (models.Cart, error) {
	if _, ok := cart[productID]; !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Product with id %d not found in cart", productID))
	}
	cart[productID] = quantity
	return cart, nil
}

// RemoveFromCart deletes an item already in the cart.
func (s *CartService) RemoveFromCart(cart models.Cart, productID int) (models.Cart, error) {
	if _, ok := cart[productID]; !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Product with id %d not found in cart", productID))
	}
	delete(cart, productID)
	return cart, nil
}

// GetCartDetails prices the cart in one batch fetch. Entries whose
// product no longer exists are dropped silently. Line subtotals keep
// full precision; the aggregate total is rounded to a whole number
// with banker's rounding (round the sum, not the summands) since
// clients rely on that shape.
func (s *CartService) GetCartDetails(cart models.Cart) (*models.CartResponse, error) {
	if len(cart) == 0 {
		return &models.CartResponse{Items: []models.CartItem{}, Total: 0, ItemsCount: 0}, nil
	}

	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, uint(id))
	}
	products, err := s.products.GetMultipleByIDs(ids)
	if err != nil {
		return nil, err
	}

	// Re-associate by id, never by row position.
	productsByID := make(map[int]models.Product, len(products))
	for _, p := range products {
		productsByID[int(p.ID)] = p
	}

	items := make([]models.CartItem, 0, len(cart))
	total := decimal.Zero
	itemsCount := 0

	for productID, quantity := range cart {
		product, ok := productsByID[productID]
		if !ok {
			continue
		}
		subtotal := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(quantity)))

		items = append(items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Subtotal:  subtotal.InexactFloat64(),
			ImageURL:  product.ImageURL,
		})
		total = total.Add(subtotal)
		itemsCount += quantity
	}

	return &models.CartResponse{
		Items:      items,
		Total:      total.RoundBank(0).InexactFloat64(),
		ItemsCount: itemsCount,
	}, nil
}
