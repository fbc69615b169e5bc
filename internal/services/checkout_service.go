package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"konaseema/internal/models"
	"konaseema/internal/pricing"
	"konaseema/internal/repositories"
	"konaseema/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
)

// ShippingFee is the flat delivery charge added to every order. It is
// carried explicitly on the order row even while it is zero.
const ShippingFee int64 = 0

// Checkout attempt outcomes.
const (
	CheckoutInvalid   = "invalid"
	CheckoutSucceeded = "succeeded"
)

// ErrLoginRequired is returned when a checkout is submitted without an
// authenticated user. No writes happen in that case.
var ErrLoginRequired = errors.New("Please login to place the order")

// OrderEventPublisher publishes order lifecycle events for fulfillment.
// Publishing is best-effort: the checkout never fails because of it.
type OrderEventPublisher interface {
	PublishOrderCreated(orderData map[string]interface{}) error
}

// CheckoutResult describes a finished checkout attempt. On a validation
// failure only State, Message and FieldErrors are set; on success the
// generated order id, the totals and the WhatsApp handoff URL are filled.
type CheckoutResult struct {
	State       string            `json:"state"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`

	OrderID     string `json:"order_id,omitempty"`
	Subtotal    int64  `json:"subtotal"`
	Discount    int64  `json:"discount"`
	ShippingFee int64  `json:"shipping_fee"`
	Total       int64  `json:"total"`
	CouponCode  string `json:"coupon_code,omitempty"`
	HandoffURL  string `json:"handoff_url,omitempty"`
}

// CheckoutService turns a cart into a persisted order: validate the
// shipping draft, then write address, order and order items strictly in
// that sequence against the store, clear the cart and build the WhatsApp
// handoff. A failure partway leaves the earlier writes in place; there is
// no compensation and no retry, the customer resubmits from scratch.
type CheckoutService struct {
	checkoutRepo repositories.CheckoutRepository
	userRepo     repositories.UserRepository
	carts        *CartService
	drafts       *DraftService
	coupons      *CouponService
	publisher    OrderEventPublisher // optional
	waNumber     string
	validate     *validator.Validate
}

// NewCheckoutService creates a new CheckoutService. publisher may be nil
// when no broker is configured.
func NewCheckoutService(
	checkoutRepo repositories.CheckoutRepository,
	userRepo repositories.UserRepository,
	carts *CartService,
	drafts *DraftService,
	coupons *CouponService,
	publisher OrderEventPublisher,
	waNumber string,
) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		userRepo:     userRepo,
		carts:        carts,
		drafts:       drafts,
		coupons:      coupons,
		publisher:    publisher,
		waNumber:     waNumber,
		validate:     validator.New(),
	}
}

// ValidateDraft checks the shipping draft and cart without writing
// anything. The returned result is nil when the attempt may proceed.
func (s *CheckoutService) ValidateDraft(draft models.ShippingDraft, cart models.Cart) *CheckoutResult {
	draft.Phone = strings.TrimSpace(draft.Phone)

	if err := s.validate.Struct(draft); err != nil {
		fieldErrors := make(map[string]string)
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				fieldErrors[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
		}
		return &CheckoutResult{
			State:       CheckoutInvalid,
			Message:     "Please fill all required fields",
			FieldErrors: fieldErrors,
		}
	}

	if len(cart.Items) == 0 {
		return &CheckoutResult{
			State:   CheckoutInvalid,
			Message: "Your cart is empty",
		}
	}
	return nil
}

// PlaceOrder runs one checkout attempt for the session. A validation
// failure returns an invalid result and no error; ErrLoginRequired or a
// collaborator write error aborts the attempt with the earlier writes left
// in place. Only a successful attempt clears the cart.
func (s *CheckoutService) PlaceOrder(sessionID, couponCode string) (*CheckoutResult, error) {
	cart := s.carts.Get(sessionID)
	draft := s.drafts.Get(sessionID)

	if invalid := s.ValidateDraft(draft, cart); invalid != nil {
		return invalid, nil
	}

	user, err := s.userRepo.GetByID(sessionID)
	if err != nil || user == nil {
		return nil, ErrLoginRequired
	}

	subtotal := cart.Subtotal()
	couponCode = strings.ToUpper(strings.TrimSpace(couponCode))
	// The discount is recomputed from scratch on every attempt; whatever a
	// coupon preview showed earlier is irrelevant here.
	coupon := s.coupons.Apply(couponCode, subtotal)

	total := subtotal - coupon.Discount
	if total < 0 {
		total = 0
	}
	total += ShippingFee

	address := models.Address{
		UserID:       user.ID,
		FullName:     draft.FullName,
		Email:        draft.Email,
		Phone:        strings.TrimSpace(draft.Phone),
		AddressLine1: draft.Address1,
		AddressLine2: draft.Address2,
		City:         draft.City,
		State:        draft.State,
		PostalCode:   draft.Zip,
		Country:      draft.Country,
	}
	if err := s.checkoutRepo.CreateAddress(&address); err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:         user.ID,
		AddressID:      address.ID,
		Subtotal:       subtotal,
		DiscountAmount: coupon.Discount,
		ShippingFee:    ShippingFee,
		Total:          total,
		Status:         models.OrderStatusPending,
	}
	if couponCode != "" {
		order.CouponCode = &couponCode
	}
	if err := s.checkoutRepo.CreateOrder(&order); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
		})
	}
	if err := s.checkoutRepo.CreateOrderItems(items); err != nil {
		return nil, err
	}

	// The order is committed; everything below is best-effort.
	s.carts.Clear(sessionID)

	summary := orderSummary(order.ID, draft, cart.Items, subtotal, coupon.Discount, couponCode, total)
	handoff := whatsapp.Link(s.waNumber, summary)

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":  order.ID,
			"userID":   user.ID,
			"status":   order.Status,
			"subtotal": subtotal,
			"discount": coupon.Discount,
			"total":    total,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return &CheckoutResult{
		State:       CheckoutSucceeded,
		Message:     fmt.Sprintf("Order %s placed successfully", order.ID),
		OrderID:     order.ID,
		Subtotal:    subtotal,
		Discount:    coupon.Discount,
		ShippingFee: ShippingFee,
		Total:       total,
		CouponCode:  couponCode,
		HandoffURL:  handoff,
	}, nil
}

// orderSummary renders the human-readable handoff message: delivery
// details, line items and totals as fenced monospace tables, then a
// closing line.
func orderSummary(orderID string, draft models.ShippingDraft, items []models.CartItem, subtotal, discount int64, couponCode string, total int64) string {
	address := draft.Address1
	if draft.Address2 != "" {
		address += ", " + draft.Address2
	}
	deliveryRows := [][]string{
		{"Name", draft.FullName},
		{"Email", draft.Email},
		{"Phone", draft.Phone},
		{"Address", address},
		{"City", draft.City},
		{"State", draft.State},
		{"Postal Code", draft.Zip},
		{"Country", draft.Country},
	}
	if draft.DeliveryNotes != "" {
		deliveryRows = append(deliveryRows, []string{"Notes", draft.DeliveryNotes})
	}
	delivery := whatsapp.Table{
		Header: []string{"Delivery", "Details"},
		Rows:   deliveryRows,
	}

	itemRows := make([][]string, 0, len(items))
	for _, it := range items {
		amount := it.UnitPrice * int64(it.Qty)
		itemRows = append(itemRows, []string{
			it.Name,
			it.Size,
			fmt.Sprintf("%d", it.Qty),
			pricing.FormatMoney(it.UnitPrice),
			pricing.FormatMoney(amount),
		})
	}
	lines := whatsapp.Table{
		Header: []string{"Item", "Size", "Qty", "Price", "Amount"},
		Rows:   itemRows,
	}

	totalRows := [][]string{
		{"Subtotal", pricing.FormatMoney(subtotal)},
	}
	if discount > 0 {
		label := "Discount"
		if couponCode != "" {
			label = fmt.Sprintf("Discount (%s)", couponCode)
		}
		totalRows = append(totalRows, []string{label, "-" + pricing.FormatMoney(discount)})
	}
	totalRows = append(totalRows,
		[]string{"Shipping", pricing.FormatMoney(ShippingFee)},
		[]string{"Total", pricing.FormatMoney(total)},
	)
	totals := whatsapp.Table{
		Header: []string{"Summary", "Amount"},
		Rows:   totalRows,
	}

	return fmt.Sprintf("Order %s\n\n%s\n%s\n%s\nThank you for your order! We will confirm it shortly.",
		orderID, delivery.Fenced(), lines.Fenced(), totals.Fenced())
}
