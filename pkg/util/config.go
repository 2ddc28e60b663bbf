package util

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("MAP_FILE", "./data/map.osm.pbf")
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("SNAPPER", "rtree")
	viper.SetDefault("RTREE_LEAF_RADIUS_KM", 0.0)
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("BATCH_WORKERS", 4)
	viper.SetDefault("BATCH_MAX_QUERIES", 1000)
	viper.SetDefault("CONNECTIVITY_PRECHECK", true)
	viper.SetDefault("LOG_LEVEL", "info")
}

// ReadConfig. reads config.yaml from ./data/ (and extraDirs). a missing file is not an error, defaults & env vars still apply.
func ReadConfig(extraDirs ...string) error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./data/")
	for _, dir := range extraDirs {
		viper.AddConfigPath(dir)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

type Config struct {
	MapFile              string
	Snapper              string
	RtreeLeafRadiusKm    float64
	BatchWorkers         int
	BatchMaxQueries      int
	ConnectivityPrecheck bool
	UseRateLimit         bool
	RateLimitRPS         float64
	RateLimitBurst       int
	ApiTimeout           time.Duration
}

func LoadConfig() Config {
	return Config{
		MapFile:              viper.GetString("MAP_FILE"),
		Snapper:              viper.GetString("SNAPPER"),
		RtreeLeafRadiusKm:    viper.GetFloat64("RTREE_LEAF_RADIUS_KM"),
		BatchWorkers:         viper.GetInt("BATCH_WORKERS"),
		BatchMaxQueries:      viper.GetInt("BATCH_MAX_QUERIES"),
		ConnectivityPrecheck: viper.GetBool("CONNECTIVITY_PRECHECK"),
		UseRateLimit:         viper.GetBool("USE_RATE_LIMIT"),
		RateLimitRPS:         viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:       viper.GetInt("RATE_LIMIT_BURST"),
		ApiTimeout:           viper.GetDuration("API_TIMEOUT"),
	}
}
