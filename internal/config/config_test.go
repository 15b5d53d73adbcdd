package config_test

import (
	"testing"
	"time"

	"github.com/NJR201-job-market-analysis/collector-104/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://www.104.com.tw", cfg.SourceBaseURL)
	assert.Equal(t, "https://www.104.com.tw/", cfg.SourceReferer)
	assert.Equal(t, "https://www.104.com.tw/job/8863t", cfg.JobURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.NotEmpty(t, cfg.PostgresDSN)
	assert.Empty(t, cfg.OTLPCollectorURL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JOB_URL", "https://www.104.com.tw/job/7abcd")
	t.Setenv("SOURCE_HTTP_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "4")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://www.104.com.tw/job/7abcd", cfg.JobURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 4, cfg.RedisDB)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOURCE_HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("REDIS_DB", "not-an-int")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 0, cfg.RedisDB)
}
