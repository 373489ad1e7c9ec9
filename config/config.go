package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	BaseURL           string `mapstructure:"BASE_URL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisStateDB  int    `mapstructure:"REDIS_STATE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Google sign-in.
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`

	// Naver cloud credentials for the geocoding proxy.
	NaverClientID     string `mapstructure:"NAVER_CLIENT_ID"`
	NaverClientSecret string `mapstructure:"NAVER_CLIENT_SECRET"`
	NaverGeocodeURL   string `mapstructure:"NAVER_GEOCODE_URL"`

	// Map SDK readiness probe endpoints.
	NaverMapsURL  string `mapstructure:"NAVER_MAPS_URL"`
	GoogleMapsURL string `mapstructure:"GOOGLE_MAPS_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("BASE_URL", "https://hantrip.example.com")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_STATE_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "hantrip")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("NAVER_CLIENT_ID", "")
	viper.SetDefault("NAVER_CLIENT_SECRET", "")
	viper.SetDefault("NAVER_GEOCODE_URL", "https://naveropenapi.apigw.ntruss.com/map-geocode/v2/geocode")
	viper.SetDefault("NAVER_MAPS_URL", "https://oapi.map.naver.com/openapi/v3/maps.js")
	viper.SetDefault("GOOGLE_MAPS_URL", "https://maps.googleapis.com/maps/api/js")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
