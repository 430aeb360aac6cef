package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-console/internal/domain/authority"
	"storefront-console/internal/handler/api"
	"storefront-console/internal/handler/middleware"
	"storefront-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, checkoutHandler *api.CheckoutHandler, adminHandler *api.PromotionAdminHandler, roleMiddleware *middleware.RoleMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, adminHandler, roleMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, checkoutHandler *api.CheckoutHandler, adminHandler *api.PromotionAdminHandler, roleMiddleware *middleware.RoleMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Checkout endpoints are called by the storefront on behalf of
		// customers; no operator role is involved.
		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/redeem", Handler: checkoutHandler.Redeem},
				{Method: http.MethodPost, Path: "/apply-discount", Handler: checkoutHandler.ApplyDiscount},
				{Method: http.MethodPost, Path: "/preview", Handler: checkoutHandler.Preview},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(roleMiddleware.RequireRole())
		{
			admin.GET("/permissions", adminHandler.MyPermissions)

			promotions := admin.Group("/promotions")
			promotions.Use(roleMiddleware.RequirePermission(authority.PermPromoView))
			{
				addRoutes(promotions, []route{
					{Method: http.MethodGet, Path: "", Handler: adminHandler.List},
					{Method: http.MethodGet, Path: "/:id", Handler: adminHandler.Get},
					{Method: http.MethodGet, Path: "/:id/usages", Handler: adminHandler.ListUsages},
					{Method: http.MethodGet, Path: "/:id/usage-summary", Handler: adminHandler.UsageSummary},
					{Method: http.MethodPost, Path: "/vouchers", Handler: adminHandler.CreateVoucher},
					{Method: http.MethodPost, Path: "/discounts", Handler: adminHandler.CreateDiscount},
					{Method: http.MethodPatch, Path: "/:id", Handler: adminHandler.Update},
					{Method: http.MethodPut, Path: "/:id/active", Handler: adminHandler.SetActive},
					{Method: http.MethodDelete, Path: "/:id", Handler: adminHandler.Delete},
				})
			}
		}
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
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
