package logfile

import (
	"fmt"
	"os"
	"strings"
)

// Log is one gathered input file.
type Log struct {
	Path  string
	Text  string
	Bytes int
	Lines int
}

// Read loads the log file at path. No format is assumed beyond being text.
// A missing file gets its own message so the CLI can report it before any
// network work happens.
func Read(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("log file %q not found", path)
		}
		return nil, fmt.Errorf("failed to read log file %q: %w", path, err)
	}

	text := string(data)
	return &Log{
		Path:  path,
		Text:  text,
		Bytes: len(data),
		Lines: countLines(text),
	}, nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
