package components

import (
	"context"
	"time"

	"course-cart/internal/handler"
	"course-cart/internal/handler/api"
	"course-cart/internal/pkg/clock"
	"course-cart/internal/pkg/config"
	"course-cart/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const limiterSweepInterval = time.Minute

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewPurchaseHandler,
		api.NewCheckoutHandler,
		api.NewFavoriteHandler,
		NewHandlers,
		NewCheckoutLimiter,
		func() *gin.Engine {
			return gin.New()
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(cart *api.CartHandler, purchase *api.PurchaseHandler, checkout *api.CheckoutHandler, favorites *api.FavoriteHandler) handler.Handlers {
	return handler.Handlers{
		Cart:      cart,
		Purchase:  purchase,
		Checkout:  checkout,
		Favorites: favorites,
	}
}

// NewCheckoutLimiter builds the per-profile checkout limiter and runs its
// idle-key sweeper for the lifetime of the app.
func NewCheckoutLimiter(lc fx.Lifecycle, cfg config.CheckoutConfig, clk clock.Clock) *ratelimit.Limiter {
	l := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.LimiterExpiry, clk)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go l.Run(limiterSweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			l.Stop()
			return nil
		},
	})
	return l
}
