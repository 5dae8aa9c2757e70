package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[database]
connection_string = "libsql://dandelion-example.turso.io"
auth_token = "token"

[data]
source = "json"
json_path = "/tmp/written.json"

[log]
level = "debug"
json = true

[display]
timezone = "America/Sao_Paulo"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Keeps the developer's shell and .env out of the assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN", "DANDELION_DATABASE_URL", "DANDELION_SOURCE", "DANDELION_JSON_PATH", "DEV_MODE"} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigValid(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "libsql://dandelion-example.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, "token", cfg.DB.AuthToken)
	assert.Equal(t, SourceJSON, cfg.Data.Source)
	assert.Equal(t, "/tmp/written.json", cfg.Data.JSONPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "America/Sao_Paulo", cfg.Display.Timezone)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeTemp(t, "[log]\nlevel = \"info\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, SourceDB, cfg.Data.Source)
	assert.Equal(t, defaultConnectionString, cfg.DB.ConnectionString)
	assert.Equal(t, defaultJSONPath, cfg.Data.JSONPath)
}

func TestLoadConfigMalformed(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(writeTemp(t, "[database\nconnection_string = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadConfigInvalidSource(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(writeTemp(t, "[data]\nsource = \"csv\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.source")
}

func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://from-turso.example")
	t.Setenv("DANDELION_SOURCE", "db")
	t.Setenv("DANDELION_JSON_PATH", "other.json")

	cfg, err := LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "libsql://from-turso.example", cfg.DB.ConnectionString)
	assert.Equal(t, SourceDB, cfg.Data.Source)
	assert.Equal(t, "other.json", cfg.Data.JSONPath)

	t.Setenv("DANDELION_DATABASE_URL", "file:./explicit.db")
	cfg, err = LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "file:./explicit.db", cfg.DB.ConnectionString)
}

func TestDevModeOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEV_MODE", "true")
	t.Setenv("DANDELION_DATABASE_URL", "libsql://prod.example")

	cfg, err := LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, devConnectionString, cfg.DB.ConnectionString)
}

func TestDotEnvLoaded(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("DANDELION_JSON_PATH=from-dotenv.json\n"), 0644))
	// godotenv never overrides variables that are already set, even to "".
	require.NoError(t, os.Unsetenv("DANDELION_JSON_PATH"))

	cfg, err := LoadConfig(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.Data.JSONPath)
	require.NoError(t, os.Unsetenv("DANDELION_JSON_PATH"))
}
