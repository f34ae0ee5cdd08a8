// Package config loads application configuration from an optional YAML
// file, a .env file, and LEVIATHAN_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Model  string       `mapstructure:"model"`
	API    APIConfig    `mapstructure:"api"`
	Store  StoreConfig  `mapstructure:"store"`
	Memory MemoryConfig `mapstructure:"memory"`
	Log    LogConfig    `mapstructure:"log"`
}

// APIConfig overrides the model-based endpoint routing.
type APIConfig struct {
	Key     string `mapstructure:"key"`
	BaseURL string `mapstructure:"base_url"`
}

// StoreConfig selects and locates the backing blob store.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // file or sqlite
	Dir     string `mapstructure:"dir"`     // file backend: bucket directory
	Path    string `mapstructure:"path"`    // sqlite backend: database file
}

// MemoryConfig tunes bucket retention.
type MemoryConfig struct {
	DefaultRetention      int `mapstructure:"default_retention"`
	ConversationRetention int `mapstructure:"conversation_retention"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// Load reads configuration. path may be empty, in which case only
// defaults, .env, and environment variables apply. A .env file in the
// working directory is loaded first so API keys can live there.
func Load(path string) (*Config, error) {
	godotenv.Load() // missing .env is fine

	v := viper.New()
	v.SetDefault("model", "deepseek-chat")
	// Empty defaults so Unmarshal picks up the LEVIATHAN_API_* env vars;
	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("api.key", "")
	v.SetDefault("api.base_url", "")
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.dir", "./memory_stores")
	v.SetDefault("store.path", "./memory_stores/leviathan.db")
	v.SetDefault("memory.default_retention", 5)
	v.SetDefault("memory.conversation_retention", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("LEVIATHAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
