package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "allocboard/internal/util/env"
	"allocboard/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN"   required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"       required:"true"`
	// sessions
	SessionSecret string `env:"SESSION_SECRET" required:"true"`
	// identity provider
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"     required:"true"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET" required:"true"`
	OAuthCallbackURL   string `env:"OAUTH_CALLBACK_URL"   required:"true"`
	// first admin; its role row is seeded on startup when set
	AdminEmail string `env:"ADMIN_EMAIL" required:"false"`
	// remote completion service
	AIAPIURL string `env:"AI_API_URL" required:"false"`
	AIAPIKey string `env:"AI_API_KEY" required:"false"`
	AIModel  string `env:"AI_MODEL"   required:"false" env-default:"gpt-4o-mini"`
	// static frontend
	FrontendDir string `env:"FRONTEND_DIR" required:"false" env-default:"./ui"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	projectRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			break
		}

		projectRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(projectRoot, ".env"),
	}

	var loaded bool
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			loaded = true
			break
		}
	}

	if !loaded {
		log.Error("Error loading .env file: could not find .env in any location")
		os.Exit(1)
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.SessionSecret == "" {
		log.Error("SESSION_SECRET is not set")
		os.Exit(1)
	}

	if env.GoogleClientID == "" || env.GoogleClientSecret == "" {
		log.Error("GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET are not set")
		os.Exit(1)
	}

	log.Info("ENV_MODE loaded", "mode", env.EnvMode)
}
