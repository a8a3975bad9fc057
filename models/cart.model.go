package models

// Cart is the client-held mapping from product id to quantity. It is
// supplied in full on every request and echoed back in full after each
// mutation; the server keeps no session state for it.
type Cart map[int]int

// AddToCartRequest is the input shape for adding an item to the cart.
type AddToCartRequest struct {
	ProductID int  `json:"product_id" validate:"gt=0"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
	Cart      Cart `json:"cart"`
}

// UpdateCartRequest is the input shape for replacing an item's quantity.
type UpdateCartRequest struct {
	ProductID int  `json:"product_id" validate:"gt=0"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
	Cart      Cart `json:"cart"`
}

// RemoveFromCartRequest carries the cart for a removal; the product id
// comes from the URL path.
type RemoveFromCartRequest struct {
	Cart Cart `json:"cart"`
}

// CartItem is a priced cart line, produced only at detail-fetch time.
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	ImageURL  string  `json:"image_url"`
}

// CartResponse is the priced view of a cart mapping.
type CartResponse struct {
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	ItemsCount int        `json:"items_count"`
}
