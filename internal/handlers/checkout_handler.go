package handlers

import (
	"errors"
	"log"

	"konaseema/internal/middleware"
	"konaseema/internal/models"
	"konaseema/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles the shipping draft, coupon preview and order
// placement for the authenticated session.
type CheckoutHandler struct {
	checkout *services.CheckoutService
	carts    *services.CartService
	drafts   *services.DraftService
	coupons  *services.CouponService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(
	checkout *services.CheckoutService,
	carts *services.CartService,
	drafts *services.DraftService,
	coupons *services.CouponService,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		carts:    carts,
		drafts:   drafts,
		coupons:  coupons,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/draft", h.HandleGetDraft)
	checkoutRoutes.Put("/draft", h.HandleSaveDraft)
	checkoutRoutes.Post("/coupon", h.HandleApplyCoupon)
	checkoutRoutes.Post("/", h.HandlePlaceOrder)
}

// HandleGetDraft returns the saved shipping draft, or the default one.
func (h *CheckoutHandler) HandleGetDraft(c *fiber.Ctx) error {
	return c.JSON(h.drafts.Get(middleware.UserID(c)))
}

// HandleSaveDraft replaces the shipping draft. The draft is saved as-is on
// every change; it is only validated when the order is placed.
func (h *CheckoutHandler) HandleSaveDraft(c *fiber.Ctx) error {
	var draft models.ShippingDraft
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing shipping draft body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	h.drafts.Save(middleware.UserID(c), draft)
	return c.JSON(draft)
}

// CouponRequest is the request body for a coupon preview.
type CouponRequest struct {
	Code string `json:"code"`
}

// HandleApplyCoupon previews a coupon against the current cart subtotal.
// Nothing is persisted; the discount is recomputed again at placement.
func (h *CheckoutHandler) HandleApplyCoupon(c *fiber.Ctx) error {
	var req CouponRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing coupon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart := h.carts.Get(middleware.UserID(c))
	result := h.coupons.Apply(req.Code, cart.Subtotal())
	return c.JSON(result)
}

// PlaceOrderRequest is the request body for placing an order.
type PlaceOrderRequest struct {
	CouponCode string `json:"coupon_code"`
}

// HandlePlaceOrder runs one checkout attempt for the session.
func (h *CheckoutHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing place-order request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	result, err := h.checkout.PlaceOrder(middleware.UserID(c), req.CouponCode)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error placing order: %v", err)
		// Collaborator write errors surface verbatim; the attempt is over
		// and whatever was written stays written.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	if result.State == services.CheckoutInvalid {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
