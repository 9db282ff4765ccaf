package queries

import (
	"context"

	"course-cart/internal/usecase"
)

type FavoriteQueries interface {
	ListFavorites(ctx context.Context, profileID string) (*CourseListView, error)
}

type favoriteQueriesImpl struct {
	sessions usecase.SessionProvider
}

func NewFavoriteQueries(sessions usecase.SessionProvider) FavoriteQueries {
	return &favoriteQueriesImpl{sessions: sessions}
}

func (q *favoriteQueriesImpl) ListFavorites(ctx context.Context, profileID string) (*CourseListView, error) {
	s, err := q.sessions.Open(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return newCourseList(s.Favorites.Items()), nil
}
