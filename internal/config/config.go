package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config carries the process-level settings of the timetable service.
type Config struct {
	Env  string
	Port int

	Log    LogConfig
	Solver SolverConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SolverConfig tunes the search engine defaults applied when a request
// does not carry its own budget.
type SolverConfig struct {
	Workers    int           // 1 = deterministic sequential search
	TimeBudget time.Duration // wall-clock budget per solve call
	NodeBudget uint64        // candidate trials per solve call; 0 = unbounded
}

// Load reads configuration from an optional .env file and the process
// environment, environment winning.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:  v.GetString("APP_ENV"),
		Port: v.GetInt("PORT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Solver: SolverConfig{
			Workers:    v.GetInt("SOLVER_WORKERS"),
			TimeBudget: v.GetDuration("SOLVER_TIME_BUDGET"),
			NodeBudget: v.GetUint64("SOLVER_NODE_BUDGET"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SOLVER_WORKERS", 1)
	v.SetDefault("SOLVER_TIME_BUDGET", 10*time.Second)
	v.SetDefault("SOLVER_NODE_BUDGET", uint64(0))
}
