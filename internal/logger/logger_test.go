package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(cfg Config) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewHandler(cfg, &buf)
	return slog.New(h), &buf
}

func TestLevel(t *testing.T) {
	log, out := newTestLogger(Config{LogLevel: "warn"})
	log.Info("quiet")
	log.Warn("loud")
	assert.NotContains(t, out.String(), "quiet")
	assert.Contains(t, out.String(), "loud")
	assert.Contains(t, out.String(), "source=logger_test.go:")
}

func TestTagFilter(t *testing.T) {
	log, out := newTestLogger(Config{LogLevel: "debug", EnabledTags: []string{"Diff"}})
	log.Debug("wanted", tagKey, "diff")
	log.Debug("other", tagKey, "event")
	log.Debug("bare")
	assert.Contains(t, out.String(), "wanted")
	assert.NotContains(t, out.String(), "other")
	assert.NotContains(t, out.String(), "bare")
}

func TestDisabledTagWins(t *testing.T) {
	log, out := newTestLogger(Config{
		LogLevel:     "debug",
		EnabledTags:  []string{"event"},
		DisabledTags: []string{"event"},
	})
	log.Info("dropped", tagKey, "event")
	assert.Empty(t, out.String())
}

func TestPackageAndFileFilters(t *testing.T) {
	log, out := newTestLogger(Config{LogLevel: "info", DisabledPackages: []string{"logger"}})
	log.Info("from logger package")
	assert.Empty(t, out.String())

	log, out = newTestLogger(Config{LogLevel: "info", EnabledFiles: []string{"other.go"}})
	log.Info("from test file")
	assert.Empty(t, out.String())

	log, out = newTestLogger(Config{LogLevel: "info", EnabledFiles: []string{"LOGGER_TEST.GO"}})
	log.Info("kept")
	assert.Contains(t, out.String(), "kept")
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := OpenOutput("")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
	require.NoError(t, closeFn())

	w, _, err = OpenOutput("-")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)

	path := filepath.Join(t.TempDir(), "out.log")
	w, closeFn, err = OpenOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "line\n")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))

	_, _, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "out.log"))
	assert.Error(t, err)
}

func TestPackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "info", DisabledTags: []string{"noisy"}}, &buf)

	InfoTagf("document", "saved %d", 3)
	InfoTagf("noisy", "skipped")
	Debugf("below level")
	Warnf("warned")

	out := buf.String()
	assert.Contains(t, out, "msg=\"saved 3\"")
	assert.Contains(t, out, "tag=document")
	assert.Contains(t, out, "source=logger_test.go:")
	assert.Contains(t, out, "msg=warned")
	assert.NotContains(t, out, "skipped")
	assert.NotContains(t, out, "below level")
}
