package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"name"`
	Slug string `gorm:"size:100;not null;unique" json:"slug"`

	// Relations
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// CreateCategoryRequest is the input shape for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=5,max=100"`
	Slug string `json:"slug" validate:"required,min=5,max=100"`
}

// CategoryResponse is the projection returned across the API boundary.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}
