package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "biztime-api", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
}

func TestLoad_PoolInconsistente(t *testing.T) {
	t.Setenv("DB_MIN_CONNS", "30")
	t.Setenv("DB_MAX_CONNS", "5")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "biz", Password: "p@ss:word", DBName: "biztime", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://biz:p%40ss%3Aword@db:5432/biztime?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other/db"
	assert.Equal(t, "postgres://other/db", c.ConnectionString())
}
