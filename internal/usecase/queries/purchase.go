package queries

import (
	"context"

	"course-cart/internal/usecase"
)

type PurchaseQueries interface {
	ListPurchases(ctx context.Context, profileID string) (*CourseListView, error)
	IsPurchased(ctx context.Context, profileID string, id int) (bool, error)
}

type purchaseQueriesImpl struct {
	sessions usecase.SessionProvider
}

func NewPurchaseQueries(sessions usecase.SessionProvider) PurchaseQueries {
	return &purchaseQueriesImpl{sessions: sessions}
}

func (q *purchaseQueriesImpl) ListPurchases(ctx context.Context, profileID string) (*CourseListView, error) {
	s, err := q.sessions.Open(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return newCourseList(s.Purchases.Items()), nil
}

func (q *purchaseQueriesImpl) IsPurchased(ctx context.Context, profileID string, id int) (bool, error) {
	s, err := q.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Purchases.IsPurchased(id), nil
}
