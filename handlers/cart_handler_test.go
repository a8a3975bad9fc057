package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/models"
)

// --- Mock Service ---

type mockCartService struct {
	known   map[int]bool
	details *models.CartResponse

	lastCart models.Cart
}

func (m *mockCartService) AddToCart(cart models.Cart, productID, quantity int) (models.Cart, error) {
	if !m.known[productID] {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}
	if cart == nil {
		cart = models.Cart{}
	}
	cart[productID] += quantity
	m.lastCart = cart
	return cart, nil
}

func (m *mockCartService) UpdateCartItem(cart models.Cart, productID, quantity int) (models.Cart, error) {
	if _, ok := cart[productID]; !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found in cart")
	}
	cart[productID] = quantity
	m.lastCart = cart
	return cart, nil
}

func (m *mockCartService) RemoveFromCart(cart models.Cart, productID int) (models.Cart, error) {
	if _, ok := cart[productID]; !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found in cart")
	}
	delete(cart, productID)
	m.lastCart = cart
	return cart, nil
}

func (m *mockCartService) GetCartDetails(cart models.Cart) (*models.CartResponse, error) {
	m.lastCart = cart
	return m.details, nil
}

func setupCartRoutes(service CartProvider) *fiber.App {
	app := newTestApp()
	handler := NewCartHandler(service)
	cart := app.Group("/api/cart")
	cart.Post("/add", handler.AddToCart)
	cart.Post("/", handler.GetCart)
	cart.Put("/update", handler.UpdateCartItem)
	cart.Delete("/remove/:product_id", handler.RemoveFromCart)
	return app
}

type cartEnvelope struct {
	Cart models.Cart `json:"cart"`
}

// --- Tests ---

func TestAddToCartRoute(t *testing.T) {
	app := setupCartRoutes(&mockCartService{known: map[int]bool{1: true}})

	resp := doJSON(t, app, "POST", "/api/cart/add", `{"product_id":1,"quantity":3,"cart":{}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body cartEnvelope
	decodeBody(t, resp, &body)
	assert.Equal(t, models.Cart{1: 3}, body.Cart)
}

func TestAddToCartRouteExistingItem(t *testing.T) {
	app := setupCartRoutes(&mockCartService{known: map[int]bool{1: true}})

	resp := doJSON(t, app, "POST", "/api/cart/add", `{"product_id":1,"quantity":2,"cart":{"1":3}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body cartEnvelope
	decodeBody(t, resp, &body)
	assert.Equal(t, models.Cart{1: 5}, body.Cart, "adding an existing item is additive")
}

func TestAddToCartRouteUnknownProduct(t *testing.T) {
	app := setupCartRoutes(&mockCartService{})

	resp := doJSON(t, app, "POST", "/api/cart/add", `{"product_id":42,"quantity":1,"cart":{}}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddToCartRouteValidation(t *testing.T) {
	service := &mockCartService{known: map[int]bool{1: true}}
	app := setupCartRoutes(service)

	resp := doJSON(t, app, "POST", "/api/cart/add", `{"product_id":1,"quantity":0,"cart":{}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ValidationErrors
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "quantity", body.Errors[0].Field)
}

func TestGetCartRoute(t *testing.T) {
	service := &mockCartService{details: &models.CartResponse{
		Items: []models.CartItem{
			{ProductID: 2, Name: "Mechanical Keyboard", Price: 9.995, Quantity: 2, Subtotal: 19.99},
		},
		Total:      20,
		ItemsCount: 2,
	}}
	app := setupCartRoutes(service)

	resp := doJSON(t, app, "POST", "/api/cart/", `{"2":2}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CartResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 20.0, body.Total)
	assert.Equal(t, 2, body.ItemsCount)
	assert.Equal(t, models.Cart{2: 2}, service.lastCart, "the raw body mapping reaches the service intact")
}

func TestGetCartRouteEmpty(t *testing.T) {
	service := &mockCartService{details: &models.CartResponse{
		Items: []models.CartItem{}, Total: 0, ItemsCount: 0,
	}}
	app := setupCartRoutes(service)

	resp := doJSON(t, app, "POST", "/api/cart/", `{}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CartResponse
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0.0, body.Total)
}

func TestUpdateCartItemRoute(t *testing.T) {
	app := setupCartRoutes(&mockCartService{})

	resp := doJSON(t, app, "PUT", "/api/cart/update", `{"product_id":1,"quantity":9,"cart":{"1":5}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body cartEnvelope
	decodeBody(t, resp, &body)
	assert.Equal(t, models.Cart{1: 9}, body.Cart, "update replaces the quantity")
}

func TestUpdateCartItemRouteNotInCart(t *testing.T) {
	app := setupCartRoutes(&mockCartService{})

	resp := doJSON(t, app, "PUT", "/api/cart/update", `{"product_id":1,"quantity":9,"cart":{}}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRemoveFromCartRoute(t *testing.T) {
	app := setupCartRoutes(&mockCartService{})

	resp := doJSON(t, app, "DELETE", "/api/cart/remove/1", `{"cart":{"1":9}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body cartEnvelope
	decodeBody(t, resp, &body)
	assert.Equal(t, models.Cart{}, body.Cart)
}

func TestRemoveFromCartRouteNotInCart(t *testing.T) {
	app := setupCartRoutes(&mockCartService{})

	resp := doJSON(t, app, "DELETE", "/api/cart/remove/1", `{"cart":{}}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRemoveFromCartRouteInvalidID(t *testing.T) {
	app := setupCartRoutes(&mockCartService{})

	resp := doJSON(t, app, "DELETE", "/api/cart/remove/not-a-number", `{"cart":{}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
