package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = ":8080"
	defaultFrontendURL = "http://localhost:3000"
	defaultDenyDelay   = 2 * time.Second
)

type Config struct {
	Env    string
	DB     db
	Server server
	Share  share
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// share holds the settings the share-link engine is constructed with.
// FrontendURL is the base of every generated access URL, DenyDelay is the
// penalty applied after a failed link-password attempt.
type share struct {
	FrontendURL string        `env:"FRONTEND_URL"`
	DenyDelay   time.Duration `env:"ACCESS_DENY_DELAY"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("frontend_url", defaultFrontendURL)
	viper.SetDefault("access_deny_delay", defaultDenyDelay)
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("app_env", EnvLocal)

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Share: share{
			FrontendURL: viper.GetString("frontend_url"),
			DenyDelay:   viper.GetDuration("access_deny_delay"),
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	return &config
}
