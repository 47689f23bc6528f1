package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	StaticPage        string `mapstructure:"STATIC_PAGE"`

	// Dataset configuration.
	DatasetSource  string `mapstructure:"DATASET_SOURCE"` // "file" or "mongo"
	DatasetPath    string `mapstructure:"DATASET_PATH"`
	ParseMode      string `mapstructure:"PARSE_MODE"` // "best-effort" or "strict"
	MatchInclusive bool   `mapstructure:"MATCH_INCLUSIVE"`

	// MongoDB, only read when DatasetSource is "mongo".
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`

	// Redis configuration.
	CacheEnabled  bool          `mapstructure:"CACHE_ENABLED"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int           `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

// SetDefaults registers default values for every key. Split out of LoadConfig so
// tests and the CLIs get the same defaults without reading a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "4040")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("STATIC_PAGE", "./views/default.html")
	v.SetDefault("DATASET_SOURCE", "file")
	v.SetDefault("DATASET_PATH", "./data/rest_hours.json")
	v.SetDefault("PARSE_MODE", "best-effort")
	v.SetDefault("MATCH_INCLUSIVE", true)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "restohours")
	v.SetDefault("MONGO_COLLECTION", "restaurants")
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

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
