package cli

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/application/port"
)

func names(sources []port.FontSource) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, s.Name())
	}
	return out
}

func TestCollectSources(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/in/b.otf", []byte("OTTO"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/in/a.ttf", []byte("\x00\x01\x00\x00"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/in/readme.txt", []byte("hi"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/in/sub/c.woff", []byte("wOFF0000"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/notes.txt", []byte("x"), 0o644))

	sources, err := CollectSources(fsys, []string{"/in", "/notes.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.ttf", "b.otf", "notes.txt"}, names(sources))
}

func TestCollectSources_MissingPath(t *testing.T) {
	_, err := CollectSources(afero.NewMemMapFs(), []string{"/nope.ttf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nope.ttf")
}

func TestFileSource_Open(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/fonts/Inter.ttf", []byte("data"), 0o644))

	src := NewFileSource(fsys, "/fonts/Inter.ttf")
	rc, err := src.Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Inter.ttf", src.Name())
	assert.Equal(t, "data", string(data))
}
