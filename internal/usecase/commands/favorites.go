package commands

import (
	"context"

	"course-cart/internal/domain/course"
	"course-cart/internal/usecase"
)

type FavoriteCommands interface {
	AddFavorite(ctx context.Context, profileID string, c course.Course) (bool, error)
	RemoveFavorite(ctx context.Context, profileID string, id int) (bool, error)
}

type favoriteCommandsImpl struct {
	sessions usecase.SessionProvider
}

func NewFavoriteCommands(sessions usecase.SessionProvider) FavoriteCommands {
	return &favoriteCommandsImpl{sessions: sessions}
}

func (uc *favoriteCommandsImpl) AddFavorite(ctx context.Context, profileID string, c course.Course) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Favorites.Add(c), nil
}

func (uc *favoriteCommandsImpl) RemoveFavorite(ctx context.Context, profileID string, id int) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Favorites.Remove(id), nil
}
