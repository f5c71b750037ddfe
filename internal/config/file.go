package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	ServerPort  string `toml:"server_port"`
	EnableStats *bool  `toml:"enable_stats"`

	ClaudeAPIKey string `toml:"claude_api_key"`
	OpenAIAPIKey string `toml:"openai_api_key"`
	GeminiAPIKey string `toml:"gemini_api_key"`
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		// Return the empty config alongside the error; Load ignores
		// the error and must still get a usable value.
		return &FileConfig{}, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	// If config already exists, do nothing
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	// Ensure directory exists
	if err := EnsureDataDir(); err != nil {
		return err
	}

	defaultConfig := `# aiproxy Configuration
# Environment variables take priority over values set here.
# server_port = ":8080"
# enable_stats = true

# Provider credentials. Prefer the environment (or a .env file) for
# these; the file form exists for setups without env control.
# claude_api_key = "sk-ant-..."
# openai_api_key = "sk-..."
# gemini_api_key = "..."
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
