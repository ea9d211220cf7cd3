package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/infrastructure/cache"
	infraDatabase "catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/lock"
	"catalog-backend/pkg/database"
	"catalog-backend/pkg/jwt"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph shared by cmd/api and cmd/worker
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *infraDatabase.PostgresDB
	Redis      *cache.RedisClient
	Transactor database.Transactor
	JWTManager *jwt.Manager
	Locker     *lock.RedisLocker

	// Repositories
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// Services
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler
}

// NewContainer builds the graph in dependency order:
// config, database, redis, repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := infraDatabase.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	c.Transactor = database.NewTransactor(db.Pool)

	// ========================================
	// STEP 3: INITIALIZE REDIS
	// ========================================
	// The API only needs Redis for health reporting, so a failure here is
	// logged and startup continues. The worker checks it again before running.
	c.Redis = cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := c.Redis.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed")
	}
	c.Locker = lock.NewRedisLocker(c.Redis.Client)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 4: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo, c.Transactor)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.Transactor)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
}

// Cleanup releases pools on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
