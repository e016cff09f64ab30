package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordkit/wordkit/pkg/logger"
)

func TestErrorAttr(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "stage", logger.Stage("filter").Key)
	assert.Equal(t, "filter", logger.Stage("filter").Value.String())

	opts := logger.Options([]string{"languages", "synonyms"})
	assert.Equal(t, "options", opts.Key)

	assert.Equal(t, "word_count", logger.WordCount(3).Key)
	assert.Equal(t, int64(3), logger.WordCount(3).Value.Int64())

	assert.Equal(t, "source", logger.Source("builtin").Key)
}
