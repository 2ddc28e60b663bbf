package util

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetConfigDefaults()

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Second, cfg.ApiTimeout)
	assert.Equal(t, "rtree", cfg.Snapper)
	assert.True(t, cfg.ConnectivityPrecheck)

	viper.Set("API_TIMEOUT", "2s")
	viper.Set("BATCH_WORKERS", 8)
	cfg = LoadConfig()
	assert.Equal(t, 2*time.Second, cfg.ApiTimeout)
	assert.Equal(t, 8, cfg.BatchWorkers)
}
