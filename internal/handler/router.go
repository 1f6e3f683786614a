package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"checkout-service/internal/handler/api"
	"checkout-service/internal/handler/middleware"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	checkoutHandler *api.CheckoutHandler,
	discoveryHandler *api.DiscoveryHandler,
	replays shared.ReplayStore,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, checkoutHandler, discoveryHandler, replays)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	checkoutHandler *api.CheckoutHandler,
	discoveryHandler *api.DiscoveryHandler,
	replays shared.ReplayStore,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Replay applies to mutating routes only; reads always execute.
	replay := middleware.IdempotentReplay(replays)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/discovery", Handler: discoveryHandler.Describe},
			{Method: http.MethodGet, Path: "/products", Handler: discoveryHandler.ListProducts},
		})

		sessions := apiGroup.Group("/checkout_sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Create, Mw: []gin.HandlerFunc{replay}},
				{Method: http.MethodGet, Path: "/:id", Handler: checkoutHandler.Get},
				{Method: http.MethodPost, Path: "/:id", Handler: checkoutHandler.Update, Mw: []gin.HandlerFunc{replay}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: checkoutHandler.Complete, Mw: []gin.HandlerFunc{replay}},
			})
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
		// Route middleware joins gin's own chain so c.Next() keeps its
		// usual meaning inside it.
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
