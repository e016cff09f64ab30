package wordlist

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SourceConfig resolves the word source from the environment.
type SourceConfig struct {
	// Path is the file to load words from.
	Path string `env:"WORDLIST_PATH"`
}

// FromEnv loads a word list from the source named by the environment.
// A .env file in the working directory is honored when present; real
// environment variables take precedence. An unset WORDLIST_PATH is a
// load error (ErrNoSource), suppressible like any other through
// WithErrorHandler.
func FromEnv(opts ...LoadOption) ([]string, error) {
	cfg := applyOptions(append(opts, withSource("env")))

	// Missing .env files are expected; only explicit variables matter.
	_ = godotenv.Load()

	src, err := env.ParseAs[SourceConfig]()
	if err != nil {
		return nil, cfg.fail(fmt.Errorf("wordlist: parsing environment: %w", err))
	}
	if src.Path == "" {
		return nil, cfg.fail(fmt.Errorf("%w: WORDLIST_PATH is not set", ErrNoSource))
	}
	return FromFile(src.Path, opts...)
}
