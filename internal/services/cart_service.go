package services

import (
	"sync"

	"konaseema/internal/models"
	"konaseema/pkg/localstore"
)

// CartService owns the per-session carts. A cart lives in memory for the
// session and is mirrored to durable local storage on every mutation, so it
// survives a restart; storage failures never surface because the cart is
// not critical state. Line identity is the composite (product, size) key.
type CartService struct {
	store *localstore.Store // optional; nil disables persistence
	carts map[string]*models.Cart
	mu    sync.RWMutex
}

// NewCartService creates a CartService backed by the given local store.
func NewCartService(store *localstore.Store) *CartService {
	return &CartService{
		store: store,
		carts: make(map[string]*models.Cart),
	}
}

// Get returns the current cart for a session, loading it from durable
// storage the first time the session is seen. Malformed stored content
// loads as an empty cart.
func (s *CartService) Get(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.cart(sessionID))
}

// Add upserts a line item keyed by (product id, size). An existing line
// accumulates quantity; a new line captures the supplied unit price.
func (s *CartService) Add(sessionID string, product models.Product, size string, qty int, unitPrice int64) models.Cart {
	if size == "" {
		size = product.Weight
	}
	if size == "" {
		size = "250g"
	}
	if qty < 1 {
		qty = 1
	}
	if unitPrice < 0 {
		unitPrice = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	key := models.LineKey(product.ID, size)
	for i := range cart.Items {
		if cart.Items[i].LineKey() == key {
			cart.Items[i].Qty += qty
			s.persist(sessionID, cart)
			return snapshot(cart)
		}
	}

	cart.Items = append(cart.Items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Image:     product.Image,
		PriceKey:  product.PriceKey,
		Size:      size,
		UnitPrice: unitPrice,
		Qty:       qty,
	})
	s.persist(sessionID, cart)
	return snapshot(cart)
}

// Increment raises the quantity of the line with the given key by one.
// An unknown key is a no-op.
func (s *CartService) Increment(sessionID, lineKey string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].LineKey() == lineKey {
			cart.Items[i].Qty++
			s.persist(sessionID, cart)
			break
		}
	}
	return snapshot(cart)
}

// Decrement lowers the quantity of the line with the given key by one and
// removes the line when it reaches zero. An unknown key is a no-op.
func (s *CartService) Decrement(sessionID, lineKey string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].LineKey() == lineKey {
			cart.Items[i].Qty--
			if cart.Items[i].Qty <= 0 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			}
			s.persist(sessionID, cart)
			break
		}
	}
	return snapshot(cart)
}

// Remove deletes the line with the given key from the cart.
func (s *CartService) Remove(sessionID, lineKey string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].LineKey() == lineKey {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			s.persist(sessionID, cart)
			break
		}
	}
	return snapshot(cart)
}

// Clear empties the cart.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	cart.Items = nil
	s.persist(sessionID, cart)
}

// cart returns the in-memory cart for a session, loading it on first use.
// Callers must hold the write lock.
func (s *CartService) cart(sessionID string) *models.Cart {
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart := &models.Cart{}
	if s.store != nil {
		s.store.Load(cartBlobKey(sessionID), cart)
	}
	s.carts[sessionID] = cart
	return cart
}

// snapshot copies a cart so the returned Items slice never shares its
// backing array with the live cart mutated under the lock.
func snapshot(cart *models.Cart) models.Cart {
	out := *cart
	out.Items = append([]models.CartItem(nil), cart.Items...)
	return out
}

func (s *CartService) persist(sessionID string, cart *models.Cart) {
	if s.store != nil {
		s.store.Save(cartBlobKey(sessionID), cart)
	}
}

func cartBlobKey(sessionID string) string {
	return "cart_" + sessionID
}
