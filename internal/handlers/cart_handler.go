package handlers

import (
	"fmt"
	"log"

	"konaseema/internal/middleware"
	"konaseema/internal/models"
	"konaseema/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart. All routes
// require an authenticated user; the user id is the session key.
type CartHandler struct {
	carts    *services.CartService
	products *services.ProductService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *services.CartService, products *services.ProductService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Post("/items/:key/increment", h.HandleIncrementItem)
	cartRoutes.Post("/items/:key/decrement", h.HandleDecrementItem)
	cartRoutes.Delete("/items/:key", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// cartResponse is the cart plus its derived values.
type cartResponse struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int64             `json:"total"`
}

func toCartResponse(cart models.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartResponse{
		Items: items,
		Count: cart.Count(),
		Total: cart.Subtotal(),
	}
}

// HandleGetCart returns the current cart with its derived count and total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(toCartResponse(h.carts.Get(middleware.UserID(c))))
}

// AddItemRequest is the request body for adding a line to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
}

// HandleAddItem adds a product in a chosen size to the cart. The unit
// price is resolved from the price table here and captured on the line.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	product, err := h.products.GetProductByID(req.ProductID)
	if err != nil {
		log.Printf("Error getting product %s for cart add: %v", req.ProductID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
		})
	}

	unitPrice := h.products.UnitPrice(product, req.Size)
	cart := h.carts.Add(middleware.UserID(c), *product, req.Size, req.Qty, unitPrice)
	return c.Status(fiber.StatusCreated).JSON(toCartResponse(cart))
}

// HandleIncrementItem raises the quantity of one cart line by one.
func (h *CartHandler) HandleIncrementItem(c *fiber.Ctx) error {
	cart := h.carts.Increment(middleware.UserID(c), c.Params("key"))
	return c.JSON(toCartResponse(cart))
}

// HandleDecrementItem lowers the quantity of one cart line by one,
// removing the line at zero.
func (h *CartHandler) HandleDecrementItem(c *fiber.Ctx) error {
	cart := h.carts.Decrement(middleware.UserID(c), c.Params("key"))
	return c.JSON(toCartResponse(cart))
}

// HandleRemoveItem deletes one cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart := h.carts.Remove(middleware.UserID(c), c.Params("key"))
	return c.JSON(toCartResponse(cart))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.carts.Clear(middleware.UserID(c))
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
