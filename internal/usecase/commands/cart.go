package commands

import (
	"context"

	"course-cart/internal/domain/course"
	"course-cart/internal/usecase"
)

type CartCommands interface {
	AddItem(ctx context.Context, profileID string, entry course.Course) (bool, error)
	RemoveItem(ctx context.Context, profileID string, id int) (bool, error)
	UpdateItemQuantity(ctx context.Context, profileID string, id, quantity int) (bool, error)
	ClearCart(ctx context.Context, profileID string) error
}

type cartCommandsImpl struct {
	sessions usecase.SessionProvider
}

func NewCartCommands(sessions usecase.SessionProvider) CartCommands {
	return &cartCommandsImpl{sessions: sessions}
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, profileID string, entry course.Course) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Cart.AddItem(ctx, entry), nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, profileID string, id int) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Cart.RemoveItem(ctx, id), nil
}

func (uc *cartCommandsImpl) UpdateItemQuantity(ctx context.Context, profileID string, id, quantity int) (bool, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return false, err
	}
	return s.Cart.UpdateItemQuantity(ctx, id, quantity), nil
}

func (uc *cartCommandsImpl) ClearCart(ctx context.Context, profileID string) error {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return err
	}
	s.Cart.ClearCart(ctx)
	return nil
}
