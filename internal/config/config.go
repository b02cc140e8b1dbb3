// internal/config/config.go
//
// Runtime configuration read from the environment (after .env is loaded).
//
// Environment variables:
//   LOG_LEVEL=info
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//   DAILY_SALT=local_dev_salt
//   PORT=5175
//   CLIENT_ORIGIN=http://localhost:5173
//   REVEAL_ON_QUIT=true
//   COLOR=auto|always|never   (checked once merged with --color)

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the commands read.
type Config struct {
	LogLevel     string `env:"LOG_LEVEL"          envDefault:"info"`
	AnswersFile  string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile  string `env:"WORDS_ALLOWED_FILE"`
	DailySalt    string `env:"DAILY_SALT"         envDefault:"local_dev_salt"`
	Port         string `env:"PORT"               envDefault:"5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN"      envDefault:"http://localhost:5173"`
	RevealOnQuit bool   `env:"REVEAL_ON_QUIT"     envDefault:"true"`
	Color        string `env:"COLOR"              envDefault:"auto"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
