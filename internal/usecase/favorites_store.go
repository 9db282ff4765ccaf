package usecase

import (
	"sync"

	"course-cart/internal/domain/course"
)

// FavoritesStore keeps liked courses for the lifetime of a session only.
type FavoritesStore struct {
	mu        sync.RWMutex
	favorites *course.Collection
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{favorites: course.NewCollection()}
}

func (s *FavoritesStore) Add(c course.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Add(c)
}

func (s *FavoritesStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Remove(id)
}

func (s *FavoritesStore) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.Has(id)
}

func (s *FavoritesStore) Items() []course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.Items()
}
