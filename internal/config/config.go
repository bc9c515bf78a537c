// Package config resolves umlgen settings from defaults, an optional
// ~/.umlgen/config.toml and UMLGEN_* environment variables, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "UMLGEN"
	ConfigDir  = ".umlgen"
	configName = "config"
	configType = "toml"
)

const (
	KeyStoreDriver      = "store.driver"
	KeyStoreDSN         = "store.dsn"
	KeyStoreModelTTL    = "store.model_ttl"
	KeyStoreHistoryTTL  = "store.history_ttl"
	KeyFeedbackPath     = "feedback.path"
	KeyGenBaseURL       = "generation.base_url"
	KeyGenModel         = "generation.model"
	KeyGenAPIKeyRef     = "generation.api_key_ref"
	KeyGenTimeout       = "generation.timeout"
	KeyGenTemperature   = "generation.temperature"
	KeyGenMaxTokens     = "generation.max_tokens"
	KeyArtifactServer   = "artifact.server_url"
	KeyArtifactDir      = "artifact.output_dir"
	KeyStrictReferences = "model.strict_references"
	KeyLogLevel         = "log.level"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	HomeDir string

	Store      StoreConfig
	Feedback   FeedbackConfig
	Generation GenerationConfig
	Artifact   ArtifactConfig

	StrictReferences bool
	LogLevel         slog.Level

	v *viper.Viper
}

type StoreConfig struct {
	Driver     string
	DSN        string
	ModelTTL   time.Duration
	HistoryTTL time.Duration
}

type FeedbackConfig struct {
	Path string
}

type GenerationConfig struct {
	BaseURL     string
	Model       string
	APIKeyRef   string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type ArtifactConfig struct {
	ServerURL string
	OutputDir string
}

// Viper exposes the resolved settings to adapters that read their own keys.
func (c Config) Viper() *viper.Viper {
	return c.v
}

// Dir is the per-user umlgen directory.
func (c Config) Dir() string {
	return filepath.Join(c.HomeDir, ConfigDir)
}

func (c Config) SecretsDir() string {
	return filepath.Join(c.Dir(), "secrets")
}

// Load reads the configuration for the user whose home is homeDir. A missing
// config file is not an error.
func Load(homeDir string) (Config, error) {
	v := viper.New()
	setDefaults(v, homeDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v, homeDir)
}

func setDefaults(v *viper.Viper, homeDir string) {
	dir := filepath.Join(homeDir, ConfigDir)

	v.SetDefault(KeyStoreDriver, DriverSQLite)
	v.SetDefault(KeyStoreDSN, filepath.Join(dir, "umlgen.db"))
	v.SetDefault(KeyStoreModelTTL, "2h")
	v.SetDefault(KeyStoreHistoryTTL, "1h")
	v.SetDefault(KeyFeedbackPath, filepath.Join(dir, "feedback.toml"))
	v.SetDefault(KeyGenBaseURL, "https://api.together.xyz/v1")
	v.SetDefault(KeyGenModel, "moonshotai/Kimi-K2-Instruct-0905")
	v.SetDefault(KeyGenAPIKeyRef, "generation/api_key")
	v.SetDefault(KeyGenTimeout, "3m")
	v.SetDefault(KeyGenTemperature, 0.7)
	v.SetDefault(KeyGenMaxTokens, 10000)
	v.SetDefault(KeyArtifactServer, "https://www.plantuml.com/plantuml")
	v.SetDefault(KeyArtifactDir, "output_diagrams")
	v.SetDefault(KeyStrictReferences, false)
	v.SetDefault(KeyLogLevel, "warn")
}

func decode(v *viper.Viper, homeDir string) (Config, error) {
	var problems []error

	driver := strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreDriver)))
	switch driver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		problems = append(problems, fmt.Errorf("%s: unsupported driver %q", KeyStoreDriver, driver))
	}

	modelTTL := positiveDuration(v, KeyStoreModelTTL, &problems)
	historyTTL := positiveDuration(v, KeyStoreHistoryTTL, &problems)
	timeout := positiveDuration(v, KeyGenTimeout, &problems)

	temperature := v.GetFloat64(KeyGenTemperature)
	if temperature < 0 || temperature > 2 {
		problems = append(problems, fmt.Errorf("%s: must be between 0 and 2, got %v", KeyGenTemperature, temperature))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		problems = append(problems, fmt.Errorf("%s: %w", KeyLogLevel, err))
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
	}

	dsn := v.GetString(KeyStoreDSN)
	if driver == DriverSQLite {
		dsn = expandHome(dsn, homeDir)
	}

	return Config{
		HomeDir: homeDir,
		Store: StoreConfig{
			Driver:     driver,
			DSN:        dsn,
			ModelTTL:   modelTTL,
			HistoryTTL: historyTTL,
		},
		Feedback: FeedbackConfig{Path: expandHome(v.GetString(KeyFeedbackPath), homeDir)},
		Generation: GenerationConfig{
			BaseURL:     v.GetString(KeyGenBaseURL),
			Model:       v.GetString(KeyGenModel),
			APIKeyRef:   v.GetString(KeyGenAPIKeyRef),
			Timeout:     timeout,
			Temperature: temperature,
			MaxTokens:   v.GetInt(KeyGenMaxTokens),
		},
		Artifact: ArtifactConfig{
			ServerURL: v.GetString(KeyArtifactServer),
			OutputDir: expandHome(v.GetString(KeyArtifactDir), homeDir),
		},
		StrictReferences: v.GetBool(KeyStrictReferences),
		LogLevel:         level,
		v:                v,
	}, nil
}

func positiveDuration(v *viper.Viper, key string, problems *[]error) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		*problems = append(*problems, fmt.Errorf("%s: %w", key, err))
		return 0
	}
	if d <= 0 {
		*problems = append(*problems, fmt.Errorf("%s: must be positive, got %s", key, raw))
		return 0
	}
	return d
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if rest, ok := strings.CutPrefix(path, "~"+string(os.PathSeparator)); ok {
		return filepath.Join(homeDir, rest)
	}
	return path
}

// NewLogger builds the stderr text logger for the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}
