package main

import (
	"log"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/joho/godotenv"

	"github.com/nilmandal/aiproxy/internal/app"
	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/provider"
	"github.com/nilmandal/aiproxy/internal/tokenizer"
	"github.com/nilmandal/aiproxy/internal/transport/http/handler"
	"github.com/nilmandal/aiproxy/internal/usage"
)

func main() {
	// Load .env before reading the environment; missing file is fine
	_ = godotenv.Load()

	logger := setupLogger()

	// Write a default config file on first run, then load
	_ = config.EnsureConfigFile()
	cfg := config.Load()

	logCredentials(logger, cfg)

	// Token-count cache: small values, keyed by body hash
	cache, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters: 1e6,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatal(err)
	}

	providers := provider.NewProviders(cfg)
	tracker := usage.NewTracker()
	tok := tokenizer.New()

	repo := handler.NewRepo(cfg, providers, tok, tracker, cache)

	router := app.NewRouter(repo, &app.RouterOptions{
		Config: cfg,
		Logger: logger,
	})

	printStartupBanner(cfg)

	srv := app.NewServer(cfg, router)
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
