package paths

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (*Resolver, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewResolver(fs, "/work", "/home/user/Downloads"), fs
}

func TestResolveInput_Absolute(t *testing.T) {
	r, fs := newTestResolver(t)
	require.NoError(t, afero.WriteFile(fs, "/videos/clip.mp4", []byte("x"), 0o644))

	got, err := r.ResolveInput("/videos/clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/videos/clip.mp4", got)
}

func TestResolveInput_RelativeUsesWorkDir(t *testing.T) {
	r, fs := newTestResolver(t)
	require.NoError(t, afero.WriteFile(fs, "/work/clip.mp4", []byte("x"), 0o644))

	got, err := r.ResolveInput("clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/work/clip.mp4", got)
}

func TestResolveInput_Missing(t *testing.T) {
	r, _ := newTestResolver(t)

	_, err := r.ResolveInput("/videos/nope.mp4")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "/videos/nope.mp4")
}

func TestResolveInput_Empty(t *testing.T) {
	r, _ := newTestResolver(t)

	_, err := r.ResolveInput("")
	require.Error(t, err)
}

func TestResolveOutput_DefaultsToDownloads(t *testing.T) {
	r, fs := newTestResolver(t)

	got, err := r.ResolveOutput("", "clip_converted.mp4")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user/Downloads", "clip_converted.mp4"), got)

	exists, err := afero.DirExists(fs, "/home/user/Downloads")
	require.NoError(t, err)
	assert.True(t, exists, "downloads directory should be created")
}

func TestResolveOutput_ExplicitCreatesParent(t *testing.T) {
	r, fs := newTestResolver(t)

	got, err := r.ResolveOutput("/out/deeply/nested/result.mp4", "unused.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/out/deeply/nested/result.mp4", got)

	exists, err := afero.DirExists(fs, "/out/deeply/nested")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestResolveOutput_RelativeExplicit(t *testing.T) {
	r, _ := newTestResolver(t)

	got, err := r.ResolveOutput("results/out.mp4", "unused.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/work/results/out.mp4", got)
}

func TestResolveOutput_Idempotent(t *testing.T) {
	r, _ := newTestResolver(t)

	_, err := r.ResolveOutput("/out/a.mp4", "")
	require.NoError(t, err)
	_, err = r.ResolveOutput("/out/b.mp4", "")
	require.NoError(t, err)
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/clip.mp4", "clip"},
		{"clip.mp4", "clip"},
		{"archive.tar.gz", "archive.tar"},
		{"/videos/noext", "noext"},
		{".gitignore", "output"},
		{"", "output"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/images/photo.JPG", "JPG"},
		{"photo.jpeg", "jpeg"},
		{"/images/noext", "png"},
		{"", "png"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Ext(tt.path))
		})
	}
}
