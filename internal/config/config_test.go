package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Report.MaxMockFlights)
	assert.Equal(t, 20000.0, cfg.Report.MaxRadiusKm)
	assert.Equal(t, 5*time.Minute, cfg.Cache.FlightsCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.OpenSky.Timeout)
	assert.Equal(t, 24, cfg.Importer.LookbackHours)
	assert.Equal(t, "flight-import-workers", cfg.Importer.ConsumerGroup)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_HOST", "127.0.0.1")
	t.Setenv("API_PORT", "9090")
	t.Setenv("FLIGHTS_CACHE_TTL", "60")
	t.Setenv("REPORT_MAX_MOCK_FLIGHTS", "5")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "airports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, time.Minute, cfg.Cache.FlightsCacheTTL)
	assert.Equal(t, 5, cfg.Report.MaxMockFlights)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db")
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=airports")
}
