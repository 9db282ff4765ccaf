package usecase

import (
	"context"
	"log/slog"
	"sync"

	"course-cart/internal/domain/cart"
	"course-cart/internal/domain/course"
	"course-cart/internal/usecase/shared"
)

// CartStore owns the cart collection of one profile and writes it back on
// every change.
type CartStore struct {
	mu      sync.RWMutex
	cart    *cart.Cart
	storage shared.CollectionStorage
	logger  *slog.Logger
}

// NewCartStore restores the persisted cart once.
func NewCartStore(ctx context.Context, storage shared.CollectionStorage, logger *slog.Logger) *CartStore {
	return &CartStore{
		cart:    cart.New(storage.Load(ctx)...),
		storage: storage,
		logger:  logger,
	}
}

func (s *CartStore) persist(ctx context.Context) {
	s.storage.Save(ctx, s.cart.Items())
}

// AddItem inserts entry unless its id is already in the cart.
func (s *CartStore) AddItem(ctx context.Context, entry course.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Add(entry) {
		return false
	}
	s.persist(ctx)
	s.logger.Debug("cart item added", slog.Int("course_id", entry.ID))
	return true
}

func (s *CartStore) RemoveItem(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, id)
}

func (s *CartStore) removeLocked(ctx context.Context, id int) bool {
	if !s.cart.Remove(id) {
		return false
	}
	s.persist(ctx)
	s.logger.Debug("cart item removed", slog.Int("course_id", id))
	return true
}

// ClearCart empties the cart and deletes its persisted key.
func (s *CartStore) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.storage.Remove(ctx)
}

func (s *CartStore) IsInCart(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Has(id)
}

// UpdateItemQuantity removes the entry when quantity < 1.
func (s *CartStore) UpdateItemQuantity(ctx context.Context, id, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.removeLocked(ctx, id)
	}
	if !s.cart.SetQuantity(id, quantity) {
		return false
	}
	s.persist(ctx)
	return true
}

func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Len()
}

func (s *CartStore) TotalPrice() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalPrice()
}

func (s *CartStore) Items() []course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Items()
}

// CartSnapshot is a consistent view of the cart at one instant.
type CartSnapshot struct {
	Items      []course.Course
	TotalItems int
	TotalPrice int64
}

func (s *CartStore) Snapshot() CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CartSnapshot{
		Items:      s.cart.Items(),
		TotalItems: s.cart.Len(),
		TotalPrice: s.cart.TotalPrice(),
	}
}
