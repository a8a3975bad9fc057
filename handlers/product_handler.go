package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shop_backend/models"
	"shop_backend/utils"
)

// ProductProvider is what the product routes need from the service layer.
type ProductProvider interface {
	GetAllProducts() (*models.ProductListResponse, error)
	GetProductByID(id uint) (*models.ProductResponse, error)
	GetProductsByCategory(categoryID uint) (*models.ProductListResponse, error)
	CreateProduct(req models.CreateProductRequest) (*models.ProductResponse, error)
}

type ProductHandler struct {
	service ProductProvider
}

func NewProductHandler(service ProductProvider) *ProductHandler {
	return &ProductHandler{service: service}
}

// GetProducts - GET /api/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// GetProductsByCategory - GET /api/products/category/:id
func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	products, err := h.service.GetProductsByCategory(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrors{Errors: errs})
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
