package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tracklane/project-tracker-backend/config"
	httpapi "github.com/tracklane/project-tracker-backend/internal/api/http"
	"github.com/tracklane/project-tracker-backend/internal/api/http/middleware"
	projecthttp "github.com/tracklane/project-tracker-backend/internal/projects/http"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
	"github.com/tracklane/project-tracker-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Log         zerolog.Logger
	DB          *pgxpool.Pool
	Cache       *redis.Client

	// Repo is the shared repository stack, built once via ProjectRepository
	// and reused by every consumer (router, cron jobs).
	Repo repository.Repository
}

// BuildRouter wires repositories, services and handlers into a gin engine.
// Everything is constructed here and passed down; no package-level state.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(middleware.RateLimit(dep.Config.Server.RateLimitPerSec, dep.Config.Server.RateLimitBurst))
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.Config.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.DB, dep.Cache)
	healthHandler.RegisterRoutes(r)

	svc := service.NewProjectService(dep.Repo)

	v1 := r.Group("/v1")
	projectGroup := v1.Group("/project")
	projecthttp.New(svc, dep.Log).Register(projectGroup)

	return r
}

// ProjectRepository builds the store stack: Postgres, wrapped by the Redis
// read-through cache when a cache client is configured.
func ProjectRepository(dep RouterDeps) repository.Repository {
	var repo repository.Repository = repository.NewPostgresRepository(
		dep.DB, dep.Log, dep.Config.Database.SlowQueryWarn,
	)
	if dep.Cache != nil {
		repo = repository.NewCachedRepository(repo, dep.Cache, dep.Log, dep.Config.Redis.CacheTTL)
	}
	return repo
}
