package delphesplot

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, slog.LevelInfo)

	l.With("file", "a.root").Info("number of entries", "n", 3)
	l.Debug("hidden")

	re := regexp.MustCompile(`^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] \[file=a\.root\] \[n=3\] number of entries\n$`)
	assert.Regexp(t, re, buf.String())
}

func TestSetLogger(t *testing.T) {
	old := Logger()
	defer SetLogger(old)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, slog.LevelDebug))
	Logger().Debug("debug on")
	assert.Contains(t, buf.String(), "debug on")
}
