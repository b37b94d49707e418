package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Database  DatabaseConfig
	OMDB      OMDBConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// StoreConfig selects the persistence backend: "postgres" or "jsonfile".
// Only one backend is active at a time.
type StoreConfig struct {
	Backend  string
	JSONFile string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type OMDBConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_BACKEND", "postgres")
	viper.SetDefault("JSON_FILE", "data/movies.json")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("OMDB_API_URL", "http://www.omdbapi.com/")
	viper.SetDefault("OMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("RATE_LIMIT_RPS", 2)
	viper.SetDefault("RATE_LIMIT_BURST", 4)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Backend:  viper.GetString("STORE_BACKEND"),
			JSONFile: viper.GetString("JSON_FILE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		OMDB: OMDBConfig{
			APIURL:  viper.GetString("OMDB_API_URL"),
			APIKey:  viper.GetString("OMDB_API_KEY"),
			Timeout: time.Duration(viper.GetInt("OMDB_TIMEOUT_SECONDS")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
