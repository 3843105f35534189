package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingEnv is returned when environment variables cannot be parsed.
var ErrParsingEnv = errors.New("failed to parse environment variables")

// EnvConfig maps environment overrides. Unset variables leave fields nil.
type EnvConfig struct {
	Length          *int  `env:"PASSGEN_LENGTH"`
	Upper           *bool `env:"UPPER_CASE"`
	Lower           *bool `env:"LOWER_CASE"`
	Digits          *bool `env:"NUMBERS"`
	BasicSymbols    *bool `env:"MATH_SYM"`
	ExtraSymbols    *bool `env:"EXTRA_SYM"`
	AvoidRepetition *bool `env:"AVOID_REPETITION"`
}

// Set reports whether any override is present.
func (c EnvConfig) Set() bool {
	return c.Length != nil || c.Upper != nil || c.Lower != nil || c.Digits != nil ||
		c.BasicSymbols != nil || c.ExtraSymbols != nil || c.AvoidRepetition != nil
}

// LoadDotEnv loads variables from the given files, ".env" by default.
// Missing files are skipped and already-set variables are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadEnv parses overrides from the process environment.
func LoadEnv() (EnvConfig, error) {
	return parseEnv(env.Options{})
}

// LoadEnvFrom parses overrides from the given variables instead of the process environment.
func LoadEnvFrom(environ map[string]string) (EnvConfig, error) {
	return parseEnv(env.Options{Environment: environ})
}

func parseEnv(opts env.Options) (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return EnvConfig{}, errors.Join(ErrParsingEnv, err)
	}
	return cfg, nil
}
