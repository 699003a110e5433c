package paths

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ErrHomeDir is returned when the current user's home directory cannot be resolved.
var ErrHomeDir = errors.New("resolve home directory")

// ErrEmptyHomeDir is returned when the resolver succeeds with an empty path.
var ErrEmptyHomeDir = errors.New("home directory is empty")

// HomeDirFunc resolves the current user's home directory.
type HomeDirFunc func() (string, error)

// Builder joins file names onto a fixed base directory.
type Builder struct {
	baseDir string
}

type options struct {
	homeDir HomeDirFunc
}

// Option defines a function type for configuring FromHomeSubdir.
type Option func(*options)

// WithHomeDirFunc replaces the home directory resolver.
func WithHomeDirFunc(fn HomeDirFunc) Option {
	return func(opts *options) {
		opts.homeDir = fn
	}
}

// New creates a Builder that keeps baseDir as is.
func New(baseDir string) *Builder {
	return &Builder{baseDir: baseDir}
}

// FromHomeSubdir creates a Builder rooted at subdir inside the user's home directory,
// e.g. FromHomeSubdir(".claude") for ~/.claude.
// The home directory is looked up again on every call unless WithHomeDirFunc is passed.
func FromHomeSubdir(subdir string, opts ...Option) (*Builder, error) {
	settings := options{homeDir: currentHomeDir}

	for _, apply := range opts {
		apply(&settings)
	}

	home, err := settings.homeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHomeDir, err)
	}

	if home == "" {
		return nil, fmt.Errorf("%w: %w", ErrHomeDir, ErrEmptyHomeDir)
	}

	return New(filepath.Join(home, subdir)), nil
}

// BaseDir returns the directory file names are joined onto.
func (b *Builder) BaseDir() string {
	return b.baseDir
}

// Build returns filename joined onto the base directory with the platform separator.
// An absolute filename is appended to the base like any other, it does not replace it:
// New("/etc/app").Build("/tmp/x.json") is "/etc/app/tmp/x.json".
func (b *Builder) Build(filename string) string {
	return filepath.Join(b.baseDir, filename)
}

// currentHomeDir drops the go-homedir cache first, so a changed HOME is picked up.
func currentHomeDir() (string, error) {
	homedir.Reset()

	return homedir.Dir()
}
