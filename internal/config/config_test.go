package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv deja vacías las variables que lee Load.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "APP_NAME", "DB_DRIVER", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "AUTO_MIGRATE", "SHUTDOWN_TIMEOUT", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir()) // sin .env
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.UsesMemory())
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
db:
  driver: sqlite
  dsn: file:test.db
log:
  level: debug
  format: json
shutdown_timeout: 3s
`), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.DB.DSN)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DSNImpliesPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://u:p@localhost/shelter")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pgx", cfg.DB.Driver)
	assert.False(t, cfg.UsesMemory())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("LOG_LEVEL=warn\n"), 0o600))
	// godotenv no pisa variables existentes, aunque estén vacías
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DB.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DB.Driver = "pgx"
	assert.Error(t, cfg.Validate())
}
