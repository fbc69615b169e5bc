package services_test

import (
	"fmt"
	"strings"
	"testing"

	"konaseema/internal/models"
	"konaseema/internal/repositories"
	"konaseema/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockOrderEventPublisher is a mock implementation of OrderEventPublisher.
type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderCreated(orderData map[string]interface{}) error {
	args := m.Called(orderData)
	return args.Error(0)
}

type checkoutFixture struct {
	service      *services.CheckoutService
	checkoutRepo *repositories.MockCheckoutRepository
	couponRepo   *repositories.MockCouponRepository
	userRepo     *MockUserRepository
	carts        *services.CartService
	drafts       *services.DraftService
	publisher    *MockOrderEventPublisher
}

func newCheckoutFixture(publisher *MockOrderEventPublisher) *checkoutFixture {
	checkoutRepo := repositories.NewMockCheckoutRepository()
	couponRepo := repositories.NewMockCouponRepository()
	userRepo := new(MockUserRepository)
	carts := services.NewCartService(nil)
	drafts := services.NewDraftService(nil)
	coupons := services.NewCouponService(couponRepo)

	var pub services.OrderEventPublisher
	if publisher != nil {
		pub = publisher
	}
	service := services.NewCheckoutService(checkoutRepo, userRepo, carts, drafts, coupons, pub, "+91 79893 01401")

	return &checkoutFixture{
		service:      service,
		checkoutRepo: checkoutRepo,
		couponRepo:   couponRepo,
		userRepo:     userRepo,
		carts:        carts,
		drafts:       drafts,
		publisher:    publisher,
	}
}

func validDraft() models.ShippingDraft {
	return models.ShippingDraft{
		FullName: "Sita Devi",
		Email:    "sita@example.com",
		Phone:    "9876543210",
		Country:  "India",
		Address1: "12 Main Road",
		City:     "Amalapuram",
		State:    "Andhra Pradesh",
		Zip:      "533201",
	}
}

func (f *checkoutFixture) fillCart(userID string) {
	f.carts.Add(userID, kova, "250g", 2, 145)
	f.carts.Add(userID, chekkalu, "250g", 1, 90)
}

func TestCheckoutService_MissingEmailBlocksAllWrites(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.fillCart("u1")
	draft := validDraft()
	draft.Email = ""
	f.drafts.Save("u1", draft)

	result, err := f.service.PlaceOrder("u1", "")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, services.CheckoutInvalid, result.State)
	assert.Equal(t, "Please fill all required fields", result.Message)
	assert.Contains(t, result.FieldErrors, "Email")
	assert.Equal(t, 0, f.checkoutRepo.WriteCount())
	f.userRepo.AssertNotCalled(t, "GetByID")
}

func TestCheckoutService_EmptyCartIsInvalid(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.drafts.Save("u1", validDraft())

	result, err := f.service.PlaceOrder("u1", "")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, services.CheckoutInvalid, result.State)
	assert.Equal(t, "Your cart is empty", result.Message)
	assert.Equal(t, 0, f.checkoutRepo.WriteCount())
}

func TestCheckoutService_UnauthenticatedUserIsRejected(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.fillCart("ghost")
	f.drafts.Save("ghost", validDraft())
	f.userRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("user with ID ghost not found")).Once()

	result, err := f.service.PlaceOrder("ghost", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrLoginRequired)
	assert.Equal(t, 0, f.checkoutRepo.WriteCount())
	f.userRepo.AssertExpectations(t)
}

func TestCheckoutService_PlaceOrderEndToEnd(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.fillCart("u1")
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1", Username: "sita"}, nil).Once()

	result, err := f.service.PlaceOrder("u1", "")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, services.CheckoutSucceeded, result.State)
	assert.Equal(t, int64(380), result.Subtotal)
	assert.Equal(t, int64(0), result.Discount)
	assert.Equal(t, int64(380), result.Total)
	assert.NotEmpty(t, result.OrderID)

	// Exactly one address, one order and two item snapshots were written.
	require.Len(t, f.checkoutRepo.Addresses, 1)
	require.Len(t, f.checkoutRepo.Orders, 1)
	require.Len(t, f.checkoutRepo.Items, 2)

	address := f.checkoutRepo.Addresses[0]
	assert.Equal(t, "u1", address.UserID)
	assert.Equal(t, "Sita Devi", address.FullName)

	order := f.checkoutRepo.Orders[0]
	assert.Equal(t, address.ID, order.AddressID)
	assert.Equal(t, int64(380), order.Subtotal)
	assert.Equal(t, int64(380), order.Total)
	assert.Equal(t, int64(0), order.ShippingFee)
	assert.Nil(t, order.CouponCode)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	for _, item := range f.checkoutRepo.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}

	// The cart is cleared; the draft survives for the next order.
	assert.Empty(t, f.carts.Get("u1").Items)
	assert.Equal(t, "sita@example.com", f.drafts.Get("u1").Email)

	assert.True(t, strings.HasPrefix(result.HandoffURL, "https://wa.me/917989301401?text="))
	f.userRepo.AssertExpectations(t)
}

func TestCheckoutService_PercentCouponIsAppliedToOrder(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.carts.Add("u1", kova, "1kg", 1, 580)
	f.carts.Add("u1", chekkalu, "1kg", 1, 350)
	f.carts.Add("u1", kova, "250g", 1, 70)
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	f.couponRepo.Put(models.Coupon{
		Code:     "FEST15",
		IsActive: true,
		Type:     models.CouponTypePercent,
		Value:    15,
	})

	result, err := f.service.PlaceOrder("u1", "fest15")

	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.Subtotal)
	assert.Equal(t, int64(150), result.Discount)
	assert.Equal(t, int64(850), result.Total)

	order := f.checkoutRepo.Orders[0]
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "FEST15", *order.CouponCode)
	assert.Equal(t, int64(150), order.DiscountAmount)
}

func TestCheckoutService_FlatCouponFloorsTotalAtZero(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.carts.Add("u1", chekkalu, "250g", 1, 100)
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	f.couponRepo.Put(models.Coupon{
		Code:     "FLAT500",
		IsActive: true,
		Type:     models.CouponTypeFlat,
		Value:    500,
	})

	result, err := f.service.PlaceOrder("u1", "FLAT500")

	require.NoError(t, err)
	assert.Equal(t, int64(100), result.Subtotal)
	assert.Equal(t, int64(500), result.Discount)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, int64(0), f.checkoutRepo.Orders[0].Total)
}

func TestCheckoutService_OrderInsertFailureLeavesAddressAndCart(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.fillCart("u1")
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	f.checkoutRepo.FailOrder = fmt.Errorf("failed to create order: connection reset")

	result, err := f.service.PlaceOrder("u1", "")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	// The address write already happened and is not rolled back; nothing
	// after the failing step ran and the cart is untouched.
	assert.Len(t, f.checkoutRepo.Addresses, 1)
	assert.Empty(t, f.checkoutRepo.Orders)
	assert.Empty(t, f.checkoutRepo.Items)
	assert.Len(t, f.carts.Get("u1").Items, 2)
}

func TestCheckoutService_AddressInsertFailureWritesNothingElse(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.fillCart("u1")
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	f.checkoutRepo.FailAddress = fmt.Errorf("failed to create address: permission denied")

	result, err := f.service.PlaceOrder("u1", "")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, 0, f.checkoutRepo.WriteCount())
	assert.Len(t, f.carts.Get("u1").Items, 2)
}

func TestCheckoutService_PublishFailureDoesNotFailTheOrder(t *testing.T) {
	publisher := new(MockOrderEventPublisher)
	f := newCheckoutFixture(publisher)
	f.fillCart("u1")
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	result, err := f.service.PlaceOrder("u1", "")

	require.NoError(t, err)
	assert.Equal(t, services.CheckoutSucceeded, result.State)
	assert.Empty(t, f.carts.Get("u1").Items)
	publisher.AssertExpectations(t)
}

func TestCheckoutService_SummaryMessageShape(t *testing.T) {
	f := newCheckoutFixture(nil)
	f.fillCart("u1")
	f.drafts.Save("u1", validDraft())
	f.userRepo.On("GetByID", "u1").Return(&models.User{ID: "u1"}, nil).Once()

	result, err := f.service.PlaceOrder("u1", "")

	require.NoError(t, err)
	// The handoff text is URL-encoded into the link; the fenced tables and
	// the order id must be present.
	assert.Contains(t, result.HandoffURL, "%60%60%60") // ``` fence
	assert.Contains(t, result.HandoffURL, result.OrderID)
}
