// Package config loads monster-codex settings from defaults, an optional
// YAML file and MONSTER_CODEX_* environment variables.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/monster-codex/internal/clients/ai"
	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g.
// MONSTER_CODEX_UPSTREAM_BASE_URL
const EnvPrefix = "MONSTER_CODEX"

// Archive drivers
const (
	ArchiveSQLite = "sqlite"
	ArchiveMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	AI       AIConfig       `mapstructure:"ai"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	GRPC     GRPCConfig     `mapstructure:"grpc"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// UpstreamConfig holds catalog API settings.
type UpstreamConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RedisConfig holds page cache and preference store settings.
type RedisConfig struct {
	Addr    string `mapstructure:"addr"`
	Enabled bool   `mapstructure:"enabled"`
}

// ArchiveConfig holds discovered-monster storage settings.
type ArchiveConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// AIConfig holds generative model settings.
type AIConfig struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	APIKey    string `mapstructure:"api_key"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	BaseURL   string `mapstructure:"base_url"`
}

// HTTPConfig holds REST listener settings.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// GRPCConfig holds health service listener settings.
type GRPCConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	// File receives terminal UI logs
	File string `mapstructure:"file"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// DefaultDir is the per-user config directory
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "monster-codex")
}

// DefaultPath is the config file used when no path is given
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("upstream.base_url", mhapi.DefaultBaseURL)
	v.SetDefault("upstream.timeout", time.Duration(0))
	v.SetDefault("upstream.cache_ttl", mhapi.DefaultCacheTTL)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("archive.driver", ArchiveSQLite)
	v.SetDefault("archive.path", filepath.Join(DefaultDir(), "discovered.db"))
	v.SetDefault("ai.provider", ai.ProviderGemini)
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.api_key_env", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", filepath.Join(DefaultDir(), "browse.log"))
	v.SetDefault("ui.theme", string(entities.ThemeSystem))
}

// Load reads configuration from path, or DefaultPath when path is empty. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("archive.driver", c.Archive.Driver, []string{ArchiveSQLite, ArchiveMemory}, vb)
	if c.Archive.Driver == ArchiveSQLite {
		errors.ValidateRequired("archive.path", c.Archive.Path, vb)
	}
	errors.ValidateEnum("ai.provider", c.AI.Provider, []string{ai.ProviderGemini, ai.ProviderOpenAI}, vb)
	errors.ValidateRequired("upstream.base_url", c.Upstream.BaseURL, vb)
	if c.Upstream.Timeout < 0 {
		vb.InvalidField("upstream.timeout", "must not be negative")
	}
	errors.ValidateRange("grpc.port", c.GRPC.Port, 1, 65535, vb)
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		vb.InvalidField("log.level", err.Error())
	}

	return vb.Build()
}

// Theme returns the stored UI theme, falling back to system
func (c *Config) Theme() entities.Theme {
	return entities.ParseTheme(c.UI.Theme)
}

// ResolveAPIKey returns ai.api_key, or the value of the variable named by
// ai.api_key_env, or the provider's conventional variable.
func (c *Config) ResolveAPIKey() string {
	if c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	env := c.AI.APIKeyEnv
	if env == "" {
		env = DefaultAPIKeyEnv(c.AI.Provider)
	}
	return os.Getenv(env)
}

// DefaultAPIKeyEnv names the environment variable a provider's key is read from
func DefaultAPIKeyEnv(provider string) string {
	if provider == ai.ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// SaveTheme writes ui.theme into the config file at path, keeping any other
// settings already there. The directory is created when missing.
func SaveTheme(path string, theme entities.Theme) error {
	if !theme.Valid() {
		return errors.InvalidArgumentf("unknown theme %q", theme)
	}
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return errors.Wrapf(err, "failed to read config %s", path)
	}

	v.Set("ui.theme", string(theme))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}
