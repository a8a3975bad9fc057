package models

import (
	"time"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	CategoryID  uint    `gorm:"not null;index" json:"category_id"`
	ImageURL    string  `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// CreateProductRequest is the input shape for creating a product. The
// category check itself happens in the service, not here.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=5,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  uint    `json:"category_id" validate:"gt=0"`
	ImageURL    string  `json:"image_url"`
}

// ProductResponse is the projection returned across the API boundary,
// always carrying the embedded category.
type ProductResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	CategoryID  uint             `json:"category_id"`
	ImageURL    string           `json:"image_url"`
	CreatedAt   time.Time        `json:"created_at"`
	Category    CategoryResponse `json:"category"`
}

// ProductListResponse wraps a product listing with its count.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		Category:    NewCategoryResponse(p.Category),
	}
}

func NewProductListResponse(products []Product) ProductListResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = NewProductResponse(p)
	}
	return ProductListResponse{
		Products: responses,
		Total:    len(responses),
	}
}
