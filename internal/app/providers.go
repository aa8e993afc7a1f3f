package app

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"memomaker/internal/app/api"
	"memomaker/internal/app/repository"
	"memomaker/internal/app/repository/sqlite"
	"memomaker/internal/app/router"
	"memomaker/internal/config"
)

// DefaultProvider is used when A2M_PROVIDER is not set.
const DefaultProvider = "gemini"

func provideLogger() *zap.Logger {
	if os.Getenv("A2M_DEBUG") != "" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v\n", err)
		}
		return logger
	}
	// Milestones and the final summary go to the terminal; structured logs
	// stay quiet unless debugging.
	return zap.NewNop()
}

func provideAPIKeys() *config.APIKeys {
	apiKeys, err := config.InitializeConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v\n", err)
	}
	return apiKeys
}

func provideInferenceClient(keys *config.APIKeys) api.InferenceClient {
	name := os.Getenv("A2M_PROVIDER")
	if name == "" {
		name = DefaultProvider
	}

	client, err := api.NewClient(context.Background(), name, keys)
	if err != nil {
		log.Fatalf("Failed to initialize inference provider %q: %v\n", name, err)
	}
	return client
}

func provideRouter(client api.InferenceClient, logger *zap.Logger) *router.Router {
	rt, err := router.NewRouter(client, router.DefaultConfig(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize submission router: %v\n", err)
	}
	return rt
}

func provideRunDAO() repository.RunDAO {
	dataDir := os.Getenv("A2M_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v\n", err)
	}

	db, err := sqlite.NewRunDB(filepath.Join(dataDir, "runs.db"))
	if err != nil {
		log.Fatalf("Failed to open run history database: %v\n", err)
	}
	return db
}

// OpenRunDAO gives commands that only read history (history, export) the
// same database the pipeline writes to.
func OpenRunDAO() (repository.RunDAO, error) {
	dataDir := os.Getenv("A2M_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	return sqlite.NewRunDB(filepath.Join(dataDir, "runs.db"))
}
