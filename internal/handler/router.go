package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shift-booking/internal/handler/api"
	"shift-booking/internal/handler/middleware"
	"shift-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, shiftHandler *api.ShiftHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, shiftHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, shiftHandler *api.ShiftHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		shifts := apiGroup.Group("/shifts")
		addRoutes(shifts, []route{
			{Method: http.MethodGet, Path: "", Handler: shiftHandler.List},
			{Method: http.MethodGet, Path: "/overview", Handler: shiftHandler.Overview},
			{Method: http.MethodGet, Path: "/booked", Handler: shiftHandler.Booked},
			{Method: http.MethodGet, Path: "/:id", Handler: shiftHandler.Get},
			{Method: http.MethodPost, Path: "/:id/book", Handler: shiftHandler.Book},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: shiftHandler.Cancel},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
