package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_ACCESS_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Mongo.URI)
	assert.Equal(t, "blogfolio", cfg.Mongo.Database)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SECRET_ACCESS_KEY", "test-secret")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_LOCATION", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "portfolio")
	t.Setenv("S3_BUCKET", "my-bucket")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "portfolio", cfg.Mongo.Database)
	assert.Equal(t, "my-bucket", cfg.Storage.Bucket)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_ACCESS_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
