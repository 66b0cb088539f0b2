package policy

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the tunable bounds for the stock field recipes.
type Config struct {
	UsernameMaxLength int    `env:"FORM_USERNAME_MAX_LENGTH" envDefault:"20"`
	UsernameForbidden string `env:"FORM_USERNAME_FORBIDDEN" envDefault:"()<>[]{}"`
	PasswordMinLength int    `env:"FORM_PASSWORD_MIN_LENGTH" envDefault:"8"`
}

// DefaultConfig returns the stock recipe bounds without touching the
// environment.
func DefaultConfig() Config {
	return Config{
		UsernameMaxLength: 20,
		UsernameForbidden: "()<>[]{}",
		PasswordMinLength: 8,
	}
}

var dotenvOnce sync.Once

// LoadConfig parses recipe bounds from environment variables, loading the
// default .env file first if one exists.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
