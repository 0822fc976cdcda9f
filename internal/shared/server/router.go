package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/analysis"
	googleauth "beauty-backend/internal/auth"
	"beauty-backend/internal/catalog"
	"beauty-backend/internal/shared/config"
	"beauty-backend/internal/shared/metrics"
	"beauty-backend/internal/shared/server/middleware"
	"beauty-backend/internal/shared/server/respond"
	"beauty-backend/internal/tutorials"
	"beauty-backend/internal/userproducts"
	"beauty-backend/internal/users"
)

// RouterDeps carries the handlers wired into the HTTP router.
type RouterDeps struct {
	Config              config.Config
	CatalogHandler      *catalog.Handler
	AnalysisHandler     *analysis.Handler
	TutorialsHandler    *tutorials.Handler
	UsersHandler        *users.Handler
	UserProductsHandler *userproducts.Handler
	GoogleAuth          *googleauth.GoogleService
	RateLimit           *middleware.RateLimitConfig
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
		middleware.Auth(deps.Config.Env),
	)
	if deps.RateLimit != nil {
		r.Use(middleware.RateLimit(*deps.RateLimit))
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.TutorialsHandler != nil {
		deps.TutorialsHandler.RegisterRoutes(api)
	}
	if deps.UserProductsHandler != nil {
		deps.UserProductsHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
