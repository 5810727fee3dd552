package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	TMDB      TMDBConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type TMDBConfig struct {
	APIKey          string
	BaseURL         string
	PosterBaseURL   string
	BackdropBaseURL string
	TimeoutSeconds  int
}

type RecommendConfig struct {
	MaxResults     int
	CandidatePages int
	MinScore       float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 720)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_POSTER_BASE_URL", "https://image.tmdb.org/t/p/w500")
	viper.SetDefault("TMDB_BACKDROP_BASE_URL", "https://image.tmdb.org/t/p/w1280")
	viper.SetDefault("TMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("RECOMMEND_MAX_RESULTS", 4)
	viper.SetDefault("RECOMMEND_CANDIDATE_PAGES", 2)
	viper.SetDefault("RECOMMEND_MIN_SCORE", 0.5)

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
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		TMDB: TMDBConfig{
			APIKey:          viper.GetString("TMDB_API_KEY"),
			BaseURL:         viper.GetString("TMDB_BASE_URL"),
			PosterBaseURL:   viper.GetString("TMDB_POSTER_BASE_URL"),
			BackdropBaseURL: viper.GetString("TMDB_BACKDROP_BASE_URL"),
			TimeoutSeconds:  viper.GetInt("TMDB_TIMEOUT_SECONDS"),
		},
		Recommend: RecommendConfig{
			MaxResults:     viper.GetInt("RECOMMEND_MAX_RESULTS"),
			CandidatePages: viper.GetInt("RECOMMEND_CANDIDATE_PAGES"),
			MinScore:       viper.GetFloat64("RECOMMEND_MIN_SCORE"),
		},
	}

	return config, nil
}
