package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"day-planner/internal/persistence"
	"day-planner/internal/repository"
	"day-planner/internal/repository/memory"
	"day-planner/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// developmentDBPath is the database used by MYDAY_ENV=development
const developmentDBPath = "myday.db"

// GetEnvironment reads MYDAY_ENV, defaulting to production
func GetEnvironment() Environment {
	switch os.Getenv("MYDAY_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, config *Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, config: config}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (repository.Repository, error) {
	switch rf.env {
	case Testing:
		return memory.New(), nil
	case Development:
		return rf.openSQLite(developmentDBPath)
	default:
		return rf.createProductionRepository()
	}
}

// createProductionRepository honours the configured backend
func (rf *RepositoryFactory) createProductionRepository() (repository.Repository, error) {
	if rf.config.Storage.Backend == BackendMemory {
		return memory.New(), nil
	}

	if err := os.MkdirAll(rf.config.Storage.Dir, os.FileMode(rf.config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return rf.openSQLite(rf.config.GetDatabasePath())
}

func (rf *RepositoryFactory) openSQLite(path string) (repository.Repository, error) {
	repo, err := sqlite.New(path, sqlite.WithQueryTimeout(rf.config.Storage.QueryTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// CreateGateway builds the persistence gateway for repo from the storage settings
func CreateGateway(repo repository.Repository, config *Config, logger *log.Logger) (*persistence.KVGateway, error) {
	return persistence.NewGateway(repo,
		persistence.WithKey(config.Storage.Key),
		persistence.WithCorruptPolicy(persistence.CorruptPolicy(config.Storage.OnCorrupt)),
		persistence.WithLogger(logger),
	)
}
