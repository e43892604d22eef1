package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APPENV", "test")

	cfg := config.LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "test", cfg.AppEnv)
	assert.NotZero(t, cfg.AppPort)
	assert.NotEmpty(t, cfg.AppName)
}

func TestConnectDBUsesInMemorySQLiteInTests(t *testing.T) {
	t.Setenv("APPENV", "test")

	db, err := config.ConnectDB()
	require.NoError(t, err, "test environment must not need a MySQL server")
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
