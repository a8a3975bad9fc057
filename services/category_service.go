package services

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shop_backend/models"
)

// CategoryRepository is the storage access CategoryService needs.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]models.CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]models.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = models.NewCategoryResponse(c)
	}
	return responses, nil
}

func (s *CategoryService) GetCategoryByID(id uint) (*models.CategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Category with id %d not found", id))
	}
	response := models.NewCategoryResponse(*category)
	return &response, nil
}

func (s *CategoryService) GetCategoryBySlug(slug string) (*models.CategoryResponse, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Category with slug '%s' not found", slug))
	}
	response := models.NewCategoryResponse(*category)
	return &response, nil
}

// CreateCategory inserts a new category. Name and slug carry unique
// constraints; a violation surfaces as 409 Conflict.
func (s *CategoryService) CreateCategory(req models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	category := models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.repo.Create(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Category with this name or slug already exists")
		}
		return nil, err
	}
	response := models.NewCategoryResponse(category)
	return &response, nil
}
