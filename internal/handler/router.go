package handler

import (
	"net/http"

	"course-cart/internal/handler/api"
	"course-cart/internal/handler/middleware"
	"course-cart/internal/pkg/config"
	"course-cart/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cart      *api.CartHandler
	Purchase  *api.PurchaseHandler
	Checkout  *api.CheckoutHandler
	Favorites *api.FavoriteHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, checkoutLimiter *ratelimit.Limiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, checkoutLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, checkoutLimiter *ratelimit.Limiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RequireProfile())
	{
		addRoutes(apiGroup.Group("/cart"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.GetCart},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.ClearCart},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
			{Method: http.MethodGet, Path: "/items/:id", Handler: h.Cart.GetItem},
			{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Cart.UpdateQuantity},
			{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem},
		})

		addRoutes(apiGroup.Group("/purchases"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Purchase.List},
			{Method: http.MethodPost, Path: "", Handler: h.Purchase.Add},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Purchase.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Purchase.Remove},
		})

		addRoutes(apiGroup, []route{
			{
				Method:  http.MethodPost,
				Path:    "/checkout",
				Handler: h.Checkout.Checkout,
				Mw:      []gin.HandlerFunc{middleware.RateLimit(checkoutLimiter)},
			},
		})

		addRoutes(apiGroup.Group("/favorites"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Favorites.List},
			{Method: http.MethodPost, Path: "", Handler: h.Favorites.Add},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Favorites.Remove},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
