package queries

import (
	"context"

	"course-cart/internal/domain/course"
	"course-cart/internal/usecase"

	"golang.org/x/text/language"
)

type CartQueries interface {
	GetCart(ctx context.Context, profileID string) (*CartView, error)
	IsInCart(ctx context.Context, profileID string, id int) (bool, error)
}

type cartQueriesImpl struct {
	sessions usecase.SessionProvider
	lang     language.Tag
}

func NewCartQueries(sessions usecase.SessionProvider) CartQueries {
	return &cartQueriesImpl{sessions: sessions, lang: language.English}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, profileID string) (*CartView, error) {
	s, err := q.sessions.Open(ctx, profileID)
	if err != nil {
		return nil, err
	}
	snap := s.Cart.Snapshot()
	return &CartView{
		Items:             snap.Items,
		TotalItems:        snap.TotalItems,
		TotalPrice:        snap.TotalPrice,
		TotalPriceDisplay: course.FormatAmount(q.lang, snap.TotalPrice),
	}, nil
}

func (q *cartQueriesImpl) IsInCart(ctx context.Context, profileID string, id int) (bool, error) {
	s, err := q.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Cart.IsInCart(id), nil
}
