package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tee-sheet/internal/handler/api"
	"tee-sheet/internal/handler/middleware"
	"tee-sheet/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, teeTimeHandler *api.TeeTimeHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, teeTimeHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, teeTimeHandler *api.TeeTimeHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		teetimes := apiGroup.Group("/teetimes")
		{
			addRoutes(teetimes, []route{
				{Method: http.MethodGet, Path: "", Handler: teeTimeHandler.ListByDate},
				{Method: http.MethodPost, Path: "", Handler: teeTimeHandler.Create},
				{Method: http.MethodPost, Path: "/reset", Handler: teeTimeHandler.ResetBookings},
				{Method: http.MethodGet, Path: "/user/:userId", Handler: teeTimeHandler.ListByUser},
				{Method: http.MethodPatch, Path: "/:id/book", Handler: teeTimeHandler.Book},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: teeTimeHandler.Cancel},
				{Method: http.MethodPatch, Path: "/:id", Handler: teeTimeHandler.Update},
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
