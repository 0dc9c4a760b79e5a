// Package paths resolves user-supplied input and output paths to absolute
// filesystem locations, creating missing output directories and defaulting to
// the user's downloads directory when no output path is given.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound indicates the resolved input path does not exist.
var ErrNotFound = errors.New("input file not found")

// Resolver turns possibly relative or absent paths into absolute ones.
// All filesystem access goes through the injected afero.Fs so tests can run
// against an in-memory filesystem.
type Resolver struct {
	fs        afero.Fs
	workDir   string
	downloads string
}

// NewResolver creates a resolver anchored at workDir with the given downloads
// directory as the default output location.
func NewResolver(fs afero.Fs, workDir, downloads string) *Resolver {
	return &Resolver{fs: fs, workDir: workDir, downloads: downloads}
}

// DownloadsDir returns the default output directory.
func (r *Resolver) DownloadsDir() string {
	return r.downloads
}

// ResolveInput returns the absolute location of an input file and verifies it
// exists. Relative paths are resolved against the server's working directory,
// which may differ from the directory the caller had in mind — a known
// limitation of the stdio transport, where the client cannot communicate its
// own working directory.
func (r *Resolver) ResolveInput(path string) (string, error) {
	if path == "" {
		return "", errors.New("inputPath is required")
	}
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.workDir, path)
	}
	if _, err := r.fs.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	return abs, nil
}

// ResolveOutput returns the absolute output location for a tool result. An
// empty explicit path targets defaultName inside the downloads directory.
// The parent directory is created if absent; creation is idempotent.
func (r *Resolver) ResolveOutput(explicit, defaultName string) (string, error) {
	var out string
	switch {
	case explicit == "":
		out = filepath.Join(r.downloads, defaultName)
	case filepath.IsAbs(explicit):
		out = explicit
	default:
		out = filepath.Join(r.workDir, explicit)
	}
	if err := r.fs.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return out, nil
}

// Stem returns the filename without its final extension, or "output" when
// nothing usable remains (e.g. dotfiles like ".gitignore").
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "output"
	}
	return stem
}

// Ext returns the file extension without the leading dot, or "png" when the
// path has no extension.
func Ext(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "png"
	}
	return ext
}
