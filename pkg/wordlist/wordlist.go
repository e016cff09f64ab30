package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/wordkit/wordkit/pkg/logger"
)

// LoadOption configures the error behavior of the loaders.
type LoadOption func(*loadConfig)

type loadConfig struct {
	onError func(error)
	log     *slog.Logger
	source  string
}

// WithErrorHandler registers a handler that receives any load error and
// suppresses it: the loader then returns an empty list and a nil error
// instead of failing. Without a handler, load errors are fatal to the
// call.
func WithErrorHandler(h func(error)) LoadOption {
	return func(c *loadConfig) {
		c.onError = h
	}
}

// WithLogger makes the loaders report load failures to log as warnings,
// including the source being read. Logging is independent of error
// handling: the error still propagates (or is suppressed) as usual.
func WithLogger(log *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		c.log = log
	}
}

// withSource labels diagnostics from a loader with the source name.
func withSource(name string) LoadOption {
	return func(c *loadConfig) {
		c.source = name
	}
}

// Default returns a copy of the built-in word list, so callers can
// mutate their slice freely.
func Default() []string {
	words := make([]string, len(defaultWords))
	copy(words, defaultWords)
	return words
}

// FromReader reads a word list from r. Input may be newline- or
// comma-separated (or both); each token is whitespace-trimmed and
// stripped of one pair of surrounding single or double quotes, and
// blank tokens are skipped. Order is preserved.
func FromReader(r io.Reader, opts ...LoadOption) ([]string, error) {
	cfg := applyOptions(opts)

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, token := range strings.Split(scanner.Text(), ",") {
			word := cleanToken(token)
			if word != "" {
				words = append(words, word)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, cfg.fail(fmt.Errorf("wordlist: reading source: %w", err))
	}
	if len(words) == 0 {
		return nil, cfg.fail(ErrEmptySource)
	}
	return words, nil
}

// FromFile loads a word list from the file at path.
func FromFile(path string, opts ...LoadOption) ([]string, error) {
	opts = append(opts, withSource(path))
	cfg := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, cfg.fail(fmt.Errorf("%w: %s: %v", ErrNoSource, path, err))
	}
	defer f.Close()

	return FromReader(f, opts...)
}

// cleanToken trims whitespace and strips one pair of surrounding
// quotes.
func cleanToken(token string) string {
	word := strings.TrimSpace(token)
	if len(word) >= 2 {
		first, last := word[0], word[len(word)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			word = strings.TrimSpace(word[1 : len(word)-1])
		}
	}
	return word
}

func applyOptions(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// fail logs an error if a logger is configured, then routes it through
// the configured handler. With a handler the error is suppressed and
// the caller sees an empty, successful load.
func (c *loadConfig) fail(err error) error {
	if c.log != nil {
		if c.source != "" {
			c.log.Warn("word source load failed", logger.Error(err), logger.Source(c.source))
		} else {
			c.log.Warn("word source load failed", logger.Error(err))
		}
	}
	if c.onError != nil {
		c.onError(err)
		return nil
	}
	return err
}
