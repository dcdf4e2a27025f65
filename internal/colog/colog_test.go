package colog

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/notargets/gocontact/contactcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func(out *os.File)) string {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	fn(w)
	require.NoError(t, w.Close())
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return strings.Join(lines, "\n")
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	out := captureOutput(t, func(w *os.File) {
		l := &Logger{Level: contactcfg.Warning, Out: w}
		l.Debug("debug message")
		l.Info("info message")
		l.Warning("warning message")
		l.Error("error message")
	})
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warning message")
	assert.Contains(t, out, "error message")
}

func TestLoggerFormatsLevelTag(t *testing.T) {
	out := captureOutput(t, func(w *os.File) {
		l := &Logger{Level: contactcfg.Debug, Out: w}
		l.Error("code=%d", 7)
	})
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "code=7")
}
