package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Stage records a pipeline stage name under the key "stage".
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// Options records a list of configuration option names under the key
// "options".
func Options(names []string) slog.Attr {
	return slog.Any("options", names)
}

// WordCount records a word count under the key "word_count".
func WordCount(n int) slog.Attr {
	return slog.Int("word_count", n)
}

// Source records the word-source description under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}
