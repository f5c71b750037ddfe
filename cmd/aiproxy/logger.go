package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/version"
)

func setupLogger() *slog.Logger {
	// Use sensible defaults: info level, text format
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// logCredentials reports which provider keys were found. Only lengths
// are logged, never key material.
func logCredentials(logger *slog.Logger, cfg *config.Config) {
	for _, p := range []struct {
		name string
		key  string
	}{
		{"claude", cfg.ClaudeAPIKey},
		{"openai", cfg.OpenAIAPIKey},
		{"gemini", cfg.GeminiAPIKey},
	} {
		if p.key != "" {
			logger.Info("provider credential found", "provider", p.name, "key_length", len(p.key))
		} else {
			logger.Warn("no provider credential configured", "provider", p.name)
		}
	}
}

func printStartupBanner(cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "aiproxy %s - AI API Proxy\n", version.Version)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "Health:     http://localhost%s/health\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Claude:     http://localhost%s/proxy/claude\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "OpenAI:     http://localhost%s/proxy/openai\n", cfg.ServerPort)
	if cfg.EnableStats {
		fmt.Fprintf(os.Stderr, "Stats:      http://localhost%s/stats\n", cfg.ServerPort)
	}
	fmt.Fprintf(os.Stderr, "Config:     %s\n", config.ConfigPath())
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
