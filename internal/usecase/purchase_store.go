package usecase

import (
	"context"
	"log/slog"
	"sync"

	"course-cart/internal/domain/course"
	"course-cart/internal/usecase/shared"
)

// PurchaseStore owns the purchased courses of one profile. Buying a course
// takes it out of the cart; the cart never calls back, so the lock order is
// always purchases then cart.
type PurchaseStore struct {
	mu        sync.RWMutex
	purchases *course.Collection
	storage   shared.CollectionStorage
	cart      *CartStore
	logger    *slog.Logger
}

func NewPurchaseStore(ctx context.Context, storage shared.CollectionStorage, cart *CartStore, logger *slog.Logger) *PurchaseStore {
	return &PurchaseStore{
		purchases: course.NewCollection(storage.Load(ctx)...),
		storage:   storage,
		cart:      cart,
		logger:    logger,
	}
}

// AddPurchasedCourse records c and drops it from the cart. Nothing happens
// when c is already purchased.
func (s *PurchaseStore) AddPurchasedCourse(ctx context.Context, c course.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.purchases.Add(c) {
		return false
	}
	s.storage.Save(ctx, s.purchases.Items())
	s.cart.RemoveItem(ctx, c.ID)
	s.logger.Info("course purchased", slog.Int("course_id", c.ID))
	return true
}

// RemovePurchasedCourse never puts the course back into the cart.
func (s *PurchaseStore) RemovePurchasedCourse(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.purchases.Remove(id) {
		return false
	}
	s.storage.Save(ctx, s.purchases.Items())
	s.logger.Info("purchase removed", slog.Int("course_id", id))
	return true
}

func (s *PurchaseStore) IsPurchased(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.purchases.Has(id)
}

func (s *PurchaseStore) Items() []course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.purchases.Items()
}

// PurchaseAll buys every cart entry that is not yet purchased, then clears
// the cart. It returns the newly purchased courses in cart order and the
// number of entries the cart held.
func (s *PurchaseStore) PurchaseAll(ctx context.Context) ([]course.Course, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inCart := s.cart.Items()
	var bought []course.Course
	for _, c := range inCart {
		if s.purchases.Add(c) {
			bought = append(bought, c)
		}
	}
	if len(bought) > 0 {
		s.storage.Save(ctx, s.purchases.Items())
	}
	s.cart.ClearCart(ctx)
	s.logger.Info("cart purchased", slog.Int("cart_items", len(inCart)), slog.Int("courses", len(bought)))
	return bought, len(inCart)
}
