package config

import "os"

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults
//
// The struct is read-only after Load; handlers receive it at construction
// and never mutate it.
type Config struct {
	// ServerPort is the address to bind the server to (e.g., ":8080")
	ServerPort string

	// EnableStats exposes the in-memory usage endpoint at /stats
	EnableStats bool

	// Provider credentials. An empty string disables the provider's
	// proxy route and marks it unavailable in /health.
	ClaudeAPIKey string
	OpenAIAPIKey string
	GeminiAPIKey string
}

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, _ := LoadFile() // Ignore error, use defaults

	return &Config{
		ServerPort:   getEnvOrFile("SERVER_PORT", fileConfig.ServerPort, ":8080"),
		EnableStats:  getEnvBoolOrFile("ENABLE_STATS", fileConfig.EnableStats, true),
		ClaudeAPIKey: claudeKey(fileConfig),
		OpenAIAPIKey: getEnvOrFile("OPENAI_API_KEY", fileConfig.OpenAIAPIKey, ""),
		GeminiAPIKey: getEnvOrFile("GEMINI_API_KEY", fileConfig.GeminiAPIKey, ""),
	}
}

// HasClaude reports whether a Claude credential is configured.
func (c *Config) HasClaude() bool { return c.ClaudeAPIKey != "" }

// HasOpenAI reports whether an OpenAI credential is configured.
func (c *Config) HasOpenAI() bool { return c.OpenAIAPIKey != "" }

// HasGemini reports whether a Gemini credential is configured.
func (c *Config) HasGemini() bool { return c.GeminiAPIKey != "" }

// claudeKey resolves the Claude credential. CLAUDE_API_KEY wins, with
// ANTHROPIC_API_KEY as a fallback for setups using the vendor's own name.
func claudeKey(fileConfig *FileConfig) string {
	if value := os.Getenv("CLAUDE_API_KEY"); value != "" {
		return value
	}
	if value := os.Getenv("ANTHROPIC_API_KEY"); value != "" {
		return value
	}
	return fileConfig.ClaudeAPIKey
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvBoolOrFile returns env bool, file bool, or default (in priority order)
func getEnvBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}
