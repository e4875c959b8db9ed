// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-journal/internal/kv"
	"github.com/jonathan/career-journal/internal/logging"
	"github.com/jonathan/career-journal/internal/persistence"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CAREER_JOURNAL_STORAGE_BACKEND
const EnvPrefix = "CAREER_JOURNAL"

// Storage backend names
const (
	BackendMemory   = "memory"
	BackendDir      = "dir"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Backends lists every supported storage backend
var Backends = []string{BackendMemory, BackendDir, BackendSQLite, BackendRedis, BackendPostgres}

// Config is the merged configuration from defaults, an optional file, the
// environment and explicit overrides
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Export     ExportConfig     `mapstructure:"export"`
	Log        LogConfig        `mapstructure:"log"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// StorageConfig selects where the profile and entries are kept
type StorageConfig struct {
	Backend       string `mapstructure:"backend"`
	Path          string `mapstructure:"path"`      // directory (dir) or database file (sqlite)
	DSN           string `mapstructure:"dsn"`       // PostgreSQL connection URL
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	Namespace     string `mapstructure:"namespace"` // key prefix for both slots
}

// ExportConfig controls export naming, encoding and destination
type ExportConfig struct {
	Dir         string `mapstructure:"dir"`
	Format      string `mapstructure:"format"`
	Prefix      string `mapstructure:"prefix"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Prefix    string `mapstructure:"s3_prefix"`
	S3Region    string `mapstructure:"s3_region"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ValidationConfig toggles optional entry checks
type ValidationConfig struct {
	StrictDates bool `mapstructure:"strict_dates"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendDir)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.namespace", "journalize-")

	v.SetDefault("export.dir", ".")
	v.SetDefault("export.format", "json")
	v.SetDefault("export.prefix", "journalize")
	v.SetDefault("export.s3_bucket", "")
	v.SetDefault("export.s3_prefix", "")
	v.SetDefault("export.s3_region", "")
	v.SetDefault("export.s3_endpoint", "")
	v.SetDefault("export.s3_access_key", "")
	v.SetDefault("export.s3_secret_key", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)

	v.SetDefault("validation.strict_dates", false)
}

// LoadConfig merges defaults, the config file at path (YAML or JSON, optional),
// CAREER_JOURNAL_* environment variables and overrides, in increasing precedence.
// Override keys use the dotted form, e.g. "storage.backend".
func LoadConfig(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if !isBackend(c.Storage.Backend) {
		return fmt.Errorf("config error: unknown storage backend %q (want one of %s)",
			c.Storage.Backend, strings.Join(Backends, ", "))
	}
	if c.Storage.Backend == BackendPostgres && c.Storage.DSN == "" {
		return fmt.Errorf("config error: 'storage.dsn' is required for the postgres backend")
	}
	if c.Storage.Backend == BackendRedis && c.Storage.RedisAddr == "" {
		return fmt.Errorf("config error: 'storage.redis_addr' is required for the redis backend")
	}
	if c.Storage.RedisDB < 0 {
		return fmt.Errorf("config error: 'storage.redis_db' must be non-negative")
	}
	if c.Storage.Backend == BackendDir {
		for _, name := range []string{persistence.ProfileKey, persistence.EntriesKey} {
			if err := kv.ValidateFileKey(c.Storage.Namespace + name); err != nil {
				return fmt.Errorf("config error: 'storage.namespace' %q is not usable with the dir backend: %w",
					c.Storage.Namespace, err)
			}
		}
	}

	switch strings.ToLower(c.Export.Format) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("config error: unknown export format %q", c.Export.Format)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// DataPath returns the configured storage path, or a default under the user's
// home directory for the file-based backends
func (s StorageConfig) DataPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	base := filepath.Join(home, ".career-journal")
	if s.Backend == BackendSQLite {
		return filepath.Join(base, "career-journal.db"), nil
	}
	return base, nil
}

func isBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
