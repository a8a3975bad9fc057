package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shop_backend/models"
	"shop_backend/utils"
)

// CartProvider is what the cart routes need from the service layer.
type CartProvider interface {
	AddToCart(cart models.Cart, productID, quantity int) (models.Cart, error)
	UpdateCartItem(cart models.Cart, productID, quantity int) (models.Cart, error)
	RemoveFromCart(cart models.Cart, productID int) (models.Cart, error)
	GetCartDetails(cart models.Cart) (*models.CartResponse, error)
}

type CartHandler struct {
	service CartProvider
}

func NewCartHandler(service CartProvider) *CartHandler {
	return &CartHandler{service: service}
}

// AddToCart - POST /api/cart/add
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req models.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrors{Errors: errs})
	}

	cart, err := h.service.AddToCart(req.Cart, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"cart": cart})
}

// GetCart - POST /api/cart
// The body is the raw cart mapping (product id -> quantity).
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart := models.Cart{}
	if err := c.BodyParser(&cart); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	details, err := h.service.GetCartDetails(cart)
	if err != nil {
		return err
	}
	return c.JSON(details)
}

// UpdateCartItem - PUT /api/cart/update
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	var req models.UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrors{Errors: errs})
	}

	cart, err := h.service.UpdateCartItem(req.Cart, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"cart": cart})
}

// RemoveFromCart - DELETE /api/cart/remove/:product_id
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("product_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	var req models.RemoveFromCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	cart, err := h.service.RemoveFromCart(req.Cart, productID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"cart": cart})
}
