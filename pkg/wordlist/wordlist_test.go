package wordlist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordkit/wordkit/pkg/logger"
	"github.com/wordkit/wordkit/pkg/wordlist"
)

func TestDefault(t *testing.T) {
	words := wordlist.Default()
	require.NotEmpty(t, words)

	for _, w := range words {
		assert.Equal(t, strings.ToLower(w), w, "default words are lowercase")
		assert.NotContains(t, w, " ")
	}

	// Default returns a copy: mutating it must not leak into later
	// calls.
	words[0] = "mutated"
	assert.NotEqual(t, "mutated", wordlist.Default()[0])
}

func TestFromReader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "newline separated",
			input:    "apple\nbanana\ncrab\n",
			expected: []string{"apple", "banana", "crab"},
		},
		{
			name:     "comma separated",
			input:    "apple,banana,crab",
			expected: []string{"apple", "banana", "crab"},
		},
		{
			name:     "mixed separators with whitespace",
			input:    "apple, banana\n crab ,dove\n",
			expected: []string{"apple", "banana", "crab", "dove"},
		},
		{
			name:     "surrounding quotes stripped",
			input:    "\"apple\", 'banana', plain",
			expected: []string{"apple", "banana", "plain"},
		},
		{
			name:     "blank lines and empty tokens skipped",
			input:    "apple\n\n,,banana,\n   \n",
			expected: []string{"apple", "banana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := wordlist.FromReader(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}

func TestFromReaderEmptySource(t *testing.T) {
	_, err := wordlist.FromReader(strings.NewReader("  \n , \n"))
	assert.ErrorIs(t, err, wordlist.ErrEmptySource)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("ant\nbee\ncrab\n"), 0o600))

	words, err := wordlist.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ant", "bee", "crab"}, words)
}

func TestFromFileMissing(t *testing.T) {
	_, err := wordlist.FromFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, wordlist.ErrNoSource)
}

func TestErrorHandlerSuppressesFailure(t *testing.T) {
	var captured error
	words, err := wordlist.FromFile(
		filepath.Join(t.TempDir(), "absent.txt"),
		wordlist.WithErrorHandler(func(e error) { captured = e }),
	)

	assert.NoError(t, err, "handled errors are suppressed")
	assert.Empty(t, words, "a suppressed failure yields an empty run")
	assert.ErrorIs(t, captured, wordlist.ErrNoSource)
}

func TestLoggerReportsLoadFailure(t *testing.T) {
	var buf strings.Builder
	log := logger.New(logger.WithTextFormat(), logger.WithOutput(&buf))

	path := filepath.Join(t.TempDir(), "absent.txt")
	_, err := wordlist.FromFile(path, wordlist.WithLogger(log))
	require.Error(t, err, "logging does not suppress the error")

	logged := buf.String()
	assert.Contains(t, logged, "word source load failed")
	assert.Contains(t, logged, "absent.txt", "the failing source is named")
	assert.Contains(t, logged, "error=")
}

func TestFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("ant,bee"), 0o600))

	t.Run("loads from configured path", func(t *testing.T) {
		t.Setenv("WORDLIST_PATH", path)
		words, err := wordlist.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"ant", "bee"}, words)
	})

	t.Run("unset path is a load error", func(t *testing.T) {
		t.Setenv("WORDLIST_PATH", "")
		_, err := wordlist.FromEnv()
		assert.ErrorIs(t, err, wordlist.ErrNoSource)
	})
}
