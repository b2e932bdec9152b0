package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), FileName+".") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 3)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	assert.Empty(t, backups(t, dir))

	_, err = r.Write(chunk)
	require.NoError(t, err)

	assert.Len(t, backups(t, dir), 1)
	info, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_PrunesOldBackups(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"20250101-000000.000", "20250102-000000.000", "20250103-000000.000"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+"."+name), []byte("old"), 0o600))
	}

	r, err := NewLogRotator(dir, 1, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	r.prune()

	assert.Equal(t, []string{FileName + ".20250102-000000.000", FileName + ".20250103-000000.000"}, backups(t, dir))
}

func TestNewWithFile_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(Config{Format: "json"}, FileConfig{Enabled: true, LogDir: dir, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info().Msg("hello file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
