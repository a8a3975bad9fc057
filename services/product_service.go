package services

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"shop_backend/models"
)

// ProductRepository is the storage access ProductService and CartService need.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByCategory(categoryID uint) ([]models.Product, error)
	GetMultipleByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
}

type ProductService struct {
	products   ProductRepository
	categories CategoryRepository
}

func NewProductService(products ProductRepository, categories CategoryRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
	}
}

func (s *ProductService) GetAllProducts() (*models.ProductListResponse, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	response := models.NewProductListResponse(products)
	return &response, nil
}

func (s *ProductService) GetProductByID(id uint) (*models.ProductResponse, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Product with id %d not found", id))
	}
	response := models.NewProductResponse(*product)
	return &response, nil
}

// GetProductsByCategory lists the products of an existing category. The
// category is checked first: an unknown category is a 404 even when it
// would have listed zero products, while a known empty category yields
// an empty list.
func (s *ProductService) GetProductsByCategory(categoryID uint) (*models.ProductListResponse, error) {
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Category with id %d not found", categoryID))
	}

	products, err := s.products.GetByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	response := models.NewProductListResponse(products)
	return &response, nil
}

// CreateProduct inserts a new product after checking that the referenced
// category exists. A missing category is a 400: the client's input is
// invalid, not a fetched resource absent.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.ProductResponse, error) {
	category, err := s.categories.GetByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Category with id %d does not exist", req.CategoryID))
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}
	if err := s.products.Create(&product); err != nil {
		return nil, err
	}
	product.Category = *category

	response := models.NewProductResponse(product)
	return &response, nil
}
