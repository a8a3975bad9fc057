package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shop_backend/models"
	"shop_backend/utils"
)

// CategoryProvider is what the category routes need from the service layer.
type CategoryProvider interface {
	GetAllCategories() ([]models.CategoryResponse, error)
	GetCategoryByID(id uint) (*models.CategoryResponse, error)
	GetCategoryBySlug(slug string) (*models.CategoryResponse, error)
	CreateCategory(req models.CreateCategoryRequest) (*models.CategoryResponse, error)
}

type CategoryHandler struct {
	service CategoryProvider
}

func NewCategoryHandler(service CategoryProvider) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// GetCategory - GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	category, err := h.service.GetCategoryByID(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// GetCategoryBySlug - GET /api/categories/slug/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// CreateCategory - POST /api/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req models.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrors{Errors: errs})
	}

	category, err := h.service.CreateCategory(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
