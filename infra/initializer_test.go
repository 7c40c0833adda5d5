package infra

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test; t.Setenv registers
// the restore, envconfig needs them truly absent.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	unsetenv(t, "PORT", "DB_NAME", "TOKEN_TTL", "LOG_LEVEL", "LOG_FORMAT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "smartZone", cfg.DBName)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRequiresAccessToken(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	unsetenv(t, "ACCESS_TOKEN", "TOKEN_TTL")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "ACCESS_TOKEN")
}

func TestLoadConfigRequiresStoreCredentials(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "test-secret")
	unsetenv(t, "MONGO_URI", "DB_USER", "DB_PASS", "TOKEN_TTL")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestURIFallback(t *testing.T) {
	cfg := &Config{DBUser: "user", DBPass: "pass"}
	uri := cfg.URI()
	assert.Contains(t, uri, "mongodb+srv://user:pass@")

	cfg = &Config{MongoURI: "mongodb://localhost:27017", DBUser: "user", DBPass: "pass"}
	assert.Equal(t, "mongodb://localhost:27017", cfg.URI())
}
