package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/assessments"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/server/middleware"
	"assessment-backend/internal/shared/server/respond"
	"assessment-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 30},
				"SUBMIT":  {Rate: 1, Burst: 5},
			},
		}),
	)

	repo := buildRepo(cfg)
	svc := assessments.NewService(repo, assessments.Questions)
	handler := assessments.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.AdminToken))
	handler.RegisterAdminRoutes(admin)

	r.GET("/metrics", metrics.Handler())

	return r
}

// buildRepo connects to Postgres when configured, falling back to the
// in-memory repository in dev-like environments.
func buildRepo(cfg config.Config) assessments.Repo {
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL empty; using in-memory repository")
		return assessments.NewMemoryRepo()
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	var sqlDB *sql.DB
	dbConn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
	} else {
		if err := db.RunMigrations(ctx, dbConn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			dbConn.Close()
			dbConn = nil
		}
		sqlDB = dbConn
	}
	if sqlDB == nil {
		return assessments.NewMemoryRepo()
	}
	return &assessments.PGRepo{DB: sqlDB}
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/assessments" {
		return "SUBMIT"
	}
	return "DEFAULT"
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
