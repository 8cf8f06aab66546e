package container

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/jwt"
	"catalog-backend/pkg/logger"

	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"
	userHandler "catalog-backend/internal/domains/user/handler"
	userRepo "catalog-backend/internal/domains/user/repository"
	userService "catalog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is a
// singleton for the lifetime of the process.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient // nil when the memory cache is in use
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	BookRepo   bookRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface
	UserRepo   userRepo.Repository

	// Services
	BookQueryService   bookService.QueryService
	BookCommandService bookService.CommandService
	AuthorService      authorService.ServiceInterface
	AuthService        userService.AuthService

	// Handlers
	BookHandler   *bookHandler.Handler
	AuthorHandler *authorHandler.AuthorHandler
	AuthHandler   *userHandler.AuthHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: CONFIG
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	logger.Info("[CONTAINER] Config loaded", map[string]interface{}{"env": cfg.App.Environment})

	// STEP 2: DATABASE
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// STEP 3: CACHE
	c.initCache(ctx)

	// STEP 4: JWT
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// STEP 5: REPOSITORIES
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)

	// STEP 6: SERVICES
	c.BookQueryService = bookService.NewQueryService(c.BookRepo, c.Cache, cfg.Cache.TTL)
	c.BookCommandService = bookService.NewCommandService(c.BookRepo, c.Cache)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Cache, cfg.Cache.TTL)
	c.AuthService = userService.NewAuthService(c.UserRepo, c.JWTManager)

	// STEP 7: HANDLERS
	c.BookHandler = bookHandler.NewHandler(c.BookQueryService, c.BookCommandService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.AuthHandler = userHandler.NewAuthHandler(c.AuthService)

	logger.Info("[CONTAINER] Initialized", nil)
	return c, nil
}

// initCache connects Redis when configured, falling back to the in-process
// cache if Redis is unreachable.
func (c *Container) initCache(ctx context.Context) {
	cfg := c.Config.Cache
	memory := func() cache.Cache {
		return infraCache.NewMemoryCache(cfg.MemoryCapacity, cfg.TTL)
	}

	if cfg.Driver == "memory" {
		logger.Info("[CACHE] Using in-memory cache", map[string]interface{}{"capacity": cfg.MemoryCapacity})
		c.Cache = memory()
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("[CACHE] Redis unreachable, falling back to in-memory cache", err)
		_ = rc.Close()
		c.Cache = memory()
		return
	}

	c.Redis = rc
	c.Cache = infraCache.NewRedisCache(rc.Client, cfg.Prefix)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases connections in reverse order of creation.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("[CONTAINER] Failed to close Redis", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("[CONTAINER] Failed to close database", err)
		}
	}

	logger.Info("[CONTAINER] Cleanup completed", nil)
}
