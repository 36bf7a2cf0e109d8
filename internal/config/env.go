package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds runtime settings read from the process environment.
type Env struct {
	AudioEnabled bool    `env:"KNIFE_MASTER_AUDIO_ENABLED" envDefault:"true"`
	Volume       float64 `env:"KNIFE_MASTER_VOLUME" envDefault:"1.0"`
	SampleRate   int     `env:"KNIFE_MASTER_SAMPLE_RATE" envDefault:"44100"`
	DBPath       string  `env:"KNIFE_MASTER_DB" envDefault:"~/.knifemaster/knifemaster.db"`
	ConfigPath   string  `env:"KNIFE_MASTER_CONFIG"`
	LogLevel     string  `env:"KNIFE_MASTER_LOG_LEVEL" envDefault:"info"`
	LogFile      string  `env:"KNIFE_MASTER_LOG_FILE" envDefault:"~/.knifemaster/knifemaster.log"`
}

// LoadEnv loads optional dotenv files (./.env when none are given) and then
// parses the KNIFE_MASTER_* variables. Variables already set in the process
// win over dotenv values.
func LoadEnv(dotenvFiles ...string) (Env, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load dotenv: %w", err)
	}
	return ParseEnv()
}

// ParseEnv parses the KNIFE_MASTER_* variables without touching dotenv files.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.Volume < 0 {
		e.Volume = 0
	}
	if e.Volume > 1 {
		e.Volume = 1
	}
	return e, nil
}
