package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/cli/styles"
	"github.com/bnema/fontkeeper/internal/logging"
)

func plainTheme(t *testing.T) *styles.Theme {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	return styles.NewTheme()
}

func writeLog(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestListLogFiles_ActiveFirstThenNewest(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, logging.FileName+".20250101-100000.000", "old\n")
	writeLog(t, dir, logging.FileName+".20250301-100000.000", "newer\n")
	writeLog(t, dir, logging.FileName, "current\n")
	writeLog(t, dir, "other.log", "ignored\n")

	files, err := listLogFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.True(t, files[0].Active)
	assert.Equal(t, logging.FileName+".20250301-100000.000", files[1].Name)
	assert.Equal(t, logging.FileName+".20250101-100000.000", files[2].Name)
}

func TestListLogFiles_MissingDir(t *testing.T) {
	files, err := listLogFiles(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestClearLogFiles(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, logging.FileName, "current\n")
	writeLog(t, dir, logging.FileName+".20250101-100000.000", "old\n")

	files, err := listLogFiles(dir)
	require.NoError(t, err)

	removed, err := clearLogFiles(files, false)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.FileExists(t, filepath.Join(dir, logging.FileName))
	assert.NoFileExists(t, filepath.Join(dir, logging.FileName+".20250101-100000.000"))

	files, err = listLogFiles(dir)
	require.NoError(t, err)
	removed, err = clearLogFiles(files, true)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	info, err := os.Stat(filepath.Join(dir, logging.FileName))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestShowLog_LastLines(t *testing.T) {
	theme := plainTheme(t)
	dir := t.TempDir()
	writeLog(t, dir, logging.FileName, "one\ntwo\nthree\n")

	var out bytes.Buffer
	require.NoError(t, showLog(&out, filepath.Join(dir, logging.FileName), 2, theme))

	assert.Equal(t, "two\nthree\n", out.String())
}

func TestColorizeLogLine_JSON(t *testing.T) {
	theme := plainTheme(t)

	line := `{"level":"info","time":"2025-03-10T12:30:45Z","component":"cli","message":"font activated"}`

	assert.Equal(t, "12:30:45 INF [cli] font activated", colorizeLogLine(line, theme))
}
