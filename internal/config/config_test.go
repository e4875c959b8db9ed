package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, BackendDir, cfg.Storage.Backend)
	assert.Equal(t, "journalize-", cfg.Storage.Namespace)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, "journalize", cfg.Export.Prefix)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Validation.StrictDates)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	content := `
storage:
  backend: sqlite
  path: /tmp/career.db
  namespace: test-
export:
  format: yaml
  s3_bucket: backups
log:
  level: debug
  development: true
validation:
  strict_dates: true
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile, nil)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/career.db", cfg.Storage.Path)
	assert.Equal(t, "test-", cfg.Storage.Namespace)
	assert.Equal(t, "yaml", cfg.Export.Format)
	assert.Equal(t, "backups", cfg.Export.S3Bucket)
	assert.Equal(t, "journalize", cfg.Export.Prefix, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.True(t, cfg.Validation.StrictDates)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	content := `{"storage": {"backend": "memory"}, "export": {"dir": "out"}}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile, nil)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "out", cfg.Export.Dir)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml", nil)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_Precedence(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("storage:\n  backend: sqlite\n  path: from-file\n"), 0644))

	t.Setenv("CAREER_JOURNAL_STORAGE_BACKEND", "redis")
	t.Setenv("CAREER_JOURNAL_STORAGE_PATH", "from-env")
	t.Setenv("CAREER_JOURNAL_VALIDATION_STRICT_DATES", "true")

	cfg, err := LoadConfig(tmpFile, map[string]any{"storage.backend": "memory"})
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend, "override beats env and file")
	assert.Equal(t, "from-env", cfg.Storage.Path, "env beats file")
	assert.True(t, cfg.Validation.StrictDates)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "floppy" }, "unknown storage backend"},
		{"postgres without dsn", func(c *Config) { c.Storage.Backend = BackendPostgres }, "'storage.dsn' is required"},
		{"postgres with dsn", func(c *Config) {
			c.Storage.Backend = BackendPostgres
			c.Storage.DSN = "postgres://localhost/career"
		}, ""},
		{"redis without addr", func(c *Config) {
			c.Storage.Backend = BackendRedis
			c.Storage.RedisAddr = ""
		}, "'storage.redis_addr' is required"},
		{"negative redis db", func(c *Config) { c.Storage.RedisDB = -1 }, "must be non-negative"},
		{"yml export", func(c *Config) { c.Export.Format = "yml" }, ""},
		{"csv export", func(c *Config) { c.Export.Format = "csv" }, "unknown export format"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"dir namespace with colon", func(c *Config) {
			c.Storage.Backend = BackendDir
			c.Storage.Namespace = "journalize:"
		}, "'storage.namespace' \"journalize:\" is not usable"},
		{"dir namespace with leading dot", func(c *Config) {
			c.Storage.Backend = BackendDir
			c.Storage.Namespace = ".hidden-"
		}, "must not start with a dot"},
		{"dir empty namespace", func(c *Config) {
			c.Storage.Backend = BackendDir
			c.Storage.Namespace = ""
		}, ""},
		{"sqlite namespace with colon", func(c *Config) {
			c.Storage.Backend = BackendSQLite
			c.Storage.Namespace = "journalize:"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDataPath(t *testing.T) {
	path, err := StorageConfig{Backend: BackendDir, Path: "/data"}.DataPath()
	require.NoError(t, err)
	assert.Equal(t, "/data", path)

	t.Setenv("HOME", "/home/ada")
	path, err = StorageConfig{Backend: BackendDir}.DataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/ada", ".career-journal"), path)

	path, err = StorageConfig{Backend: BackendSQLite}.DataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/ada", ".career-journal", "career-journal.db"), path)
}
