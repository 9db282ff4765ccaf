package commands

import (
	"context"
	"log/slog"
	"time"

	"course-cart/internal/domain/course"
	"course-cart/internal/domain/payment"
	"course-cart/internal/pkg/clock"
	"course-cart/internal/pkg/config"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase"

	"golang.org/x/text/language"
)

type CheckoutRequest struct {
	Method  string
	Details payment.Details
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, profileID string, req CheckoutRequest) (*payment.Receipt, error)
}

type checkoutCommandsImpl struct {
	sessions usecase.SessionProvider
	clock    clock.Clock
	delay    time.Duration
	logger   *slog.Logger
}

func NewCheckoutCommands(sessions usecase.SessionProvider, clk clock.Clock, cfg config.CheckoutConfig, logger *slog.Logger) CheckoutCommands {
	return &checkoutCommandsImpl{
		sessions: sessions,
		clock:    clk,
		delay:    cfg.ProcessingDelay,
		logger:   logger,
	}
}

// Checkout simulates payment for the whole cart, then moves every entry into
// the purchased courses and clears the cart. No money is moved.
func (uc *checkoutCommandsImpl) Checkout(ctx context.Context, profileID string, req CheckoutRequest) (*payment.Receipt, error) {
	s, err := uc.sessions.Open(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if s.Cart.TotalItems() == 0 {
		return nil, errs.ErrEmptyCart
	}

	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	if err := req.Details.Validate(method); err != nil {
		return nil, err
	}

	if err := uc.process(ctx); err != nil {
		uc.logger.Info("checkout canceled", slog.String("profile_id", profileID), slog.String("method", string(method)))
		return nil, err
	}

	bought, cleared := s.Purchases.PurchaseAll(ctx)
	if cleared == 0 {
		return nil, errs.ErrEmptyCart
	}

	var total int64
	for _, c := range bought {
		total += course.ParsePrice(c.Price)
	}
	if bought == nil {
		bought = []course.Course{}
	}
	receipt := payment.NewReceipt(profileID, method, bought, total, course.FormatAmount(language.English, total), uc.clock.Now())

	uc.logger.Info("checkout completed",
		slog.String("receipt_id", receipt.ID.String()),
		slog.String("profile_id", profileID),
		slog.String("method", string(method)),
		slog.Int("courses", len(bought)),
		slog.Int64("total", total),
	)
	return &receipt, nil
}

func (uc *checkoutCommandsImpl) process(ctx context.Context) error {
	if uc.delay <= 0 {
		return nil
	}
	select {
	case <-uc.clock.After(uc.delay):
		return nil
	case <-ctx.Done():
		return errs.Mark(errs.Wrap(ctx.Err(), "payment processing"), errs.ErrCheckoutCanceled)
	}
}
