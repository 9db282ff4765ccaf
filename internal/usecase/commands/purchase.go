package commands

import (
	"context"

	"course-cart/internal/domain/course"
	"course-cart/internal/usecase"
)

type PurchaseCommands interface {
	AddPurchasedCourse(ctx context.Context, profileID string, c course.Course) (bool, error)
	RemovePurchasedCourse(ctx context.Context, profileID string, id int) (bool, error)
}

type purchaseCommandsImpl struct {
	sessions usecase.SessionProvider
}

func NewPurchaseCommands(sessions usecase.SessionProvider) PurchaseCommands {
	return &purchaseCommandsImpl{sessions: sessions}
}

func (uc *purchaseCommandsImpl) AddPurchasedCourse(ctx context.Context, profileID string, c course.Course) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Purchases.AddPurchasedCourse(ctx, c), nil
}

func (uc *purchaseCommandsImpl) RemovePurchasedCourse(ctx context.Context, profileID string, id int) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Purchases.RemovePurchasedCourse(ctx, id), nil
}
