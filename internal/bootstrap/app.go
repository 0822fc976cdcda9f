package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/analysis"
	googleauth "beauty-backend/internal/auth"
	"beauty-backend/internal/catalog"
	"beauty-backend/internal/shared/config"
	"beauty-backend/internal/shared/server"
	"beauty-backend/internal/shared/server/middleware"
	"beauty-backend/internal/shared/storage/db"
	"beauty-backend/internal/shared/storage/object"
	localstore "beauty-backend/internal/shared/storage/object/local"
	s3store "beauty-backend/internal/shared/storage/object/s3"
	"beauty-backend/internal/shared/telemetry"
	"beauty-backend/internal/tutorials"
	"beauty-backend/internal/userproducts"
	"beauty-backend/internal/users"
	"beauty-backend/internal/vision"
	visionopenai "beauty-backend/internal/vision/openai"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	CatalogRepo      catalog.Repo
	AnalysisRepo     analysis.Repo
	UsersRepo        users.Repo
	UserProductsRepo userproducts.Repo

	Vision          vision.Client
	AnalysisService *analysis.Service
	UsersService    *users.Service
	Resolver        *tutorials.Resolver
	Verifier        *tutorials.Verifier

	CatalogHandler      *catalog.Handler
	AnalysisHandler     *analysis.Handler
	TutorialsHandler    *tutorials.Handler
	UsersHandler        *users.Handler
	UserProductsHandler *userproducts.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		CatalogHandler:      app.CatalogHandler,
		AnalysisHandler:     app.AnalysisHandler,
		TutorialsHandler:    app.TutorialsHandler,
		UsersHandler:        app.UsersHandler,
		UserProductsHandler: app.UserProductsHandler,
		GoogleAuth:          app.GoogleAuth,
		RateLimit:           rateLimitConfig(),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory_fallback", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory_fallback", map[string]any{"error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(ctx context.Context, app *App) error {
	var catalogRepo catalog.Repo
	var analysisRepo analysis.Repo
	var userRepo users.Repo
	var shelfRepo userproducts.Repo

	if app.DB != nil {
		pgCatalog := &catalog.PGRepo{DB: app.DB}
		if err := pgCatalog.Seed(ctx, catalog.SeedProducts()); err != nil {
			return err
		}
		catalogRepo = pgCatalog
		analysisRepo = &analysis.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		shelfRepo = &userproducts.PGRepo{DB: app.DB}
	} else {
		catalogRepo = catalog.NewMemoryRepo(catalog.SeedProducts())
		analysisRepo = analysis.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		shelfRepo = userproducts.NewMemoryRepo(catalogRepo)
	}

	visionClient := vision.Client(vision.PlaceholderClient{})
	if app.Config.VisionProvider == "openai" && os.Getenv("OPENAI_API_KEY") != "" {
		client, err := visionopenai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.VisionModel)
		if err != nil {
			return err
		}
		visionClient = client
	}

	analysisSvc := analysis.NewService(analysisRepo, visionClient, app.Store, catalogRepo)
	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.CatalogRepo = catalogRepo
	app.AnalysisRepo = analysisRepo
	app.UsersRepo = userRepo
	app.UserProductsRepo = shelfRepo
	app.Vision = visionClient
	app.AnalysisService = analysisSvc
	app.UsersService = userSvc
	app.Resolver = tutorials.NewResolver(tutorials.DefaultConfig())
	app.Verifier = tutorials.NewVerifier()
	app.CatalogHandler = catalog.NewHandler(catalogRepo)
	app.AnalysisHandler = analysis.NewHandler(analysisSvc)
	app.TutorialsHandler = tutorials.NewHandler(app.Resolver, app.Verifier)
	app.UsersHandler = users.NewHandler(userSvc)
	app.UserProductsHandler = userproducts.NewHandler(shelfRepo)
	app.GoogleAuth = googleAuthSvc

	return nil
}

// rateLimitConfig throttles the analyze endpoint, the most expensive call.
func rateLimitConfig() *middleware.RateLimitConfig {
	return &middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 0.2, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/analyze" {
				return "ANALYZE"
			}
			return ""
		},
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
