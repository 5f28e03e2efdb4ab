package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/infrastructure/database"

	authorHandler "bookshelf-backend/internal/domains/author/handler"
	authorRepo "bookshelf-backend/internal/domains/author/repository"
	authorService "bookshelf-backend/internal/domains/author/service"
	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
)

// Container is the root of the dependency graph. It owns the database
// handle explicitly so nothing in the application reaches for a global;
// lifecycle is tied to process start and Cleanup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	BookRepo   bookRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface

	BookService   bookService.ServiceInterface
	AuthorService authorService.ServiceInterface

	BookHandler   *bookHandler.BookHandler
	AuthorHandler *authorHandler.AuthorHandler
}

// NewContainer builds the whole dependency graph in order:
// config, database (incl. schema bootstrap), repositories, services,
// handlers. Any failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Idempotent: safe on every start, whether or not the tables exist.
	if err := db.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
}

// Cleanup releases container resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
