package file

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

// DefaultFileMode is the permission of files written by a Store.
const DefaultFileMode fs.FileMode = 0o644

// DefaultDirMode is the permission of directories created by a Store.
const DefaultDirMode fs.FileMode = 0o755

// ErrPathIsDirectory is returned when the path provided to the Store points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Store implements config.DataFetcher and config.DataWriter for a single file on an afero.Fs.
// It keeps no file contents between calls.
type Store struct {
	fs       afero.Fs
	path     string
	fileMode fs.FileMode
	dirMode  fs.FileMode
	atomic   bool
}

// Option defines a function type for configuring a Store.
type Option func(*Store)

// WithFileMode sets the permission used for written files.
func WithFileMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.fileMode = mode
	}
}

// WithDirMode sets the permission used for created directories.
func WithDirMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.dirMode = mode
	}
}

// WithAtomicWrite makes Write go through a temp file in the same directory that is renamed over the target.
func WithAtomicWrite() Option {
	return func(s *Store) {
		s.atomic = true
	}
}

// NewStore creates a Store for fpath on fsys. A nil fsys means the OS filesystem.
func NewStore(fsys afero.Fs, fpath string, opts ...Option) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	store := &Store{
		fs:       fsys,
		path:     filepath.Clean(fpath),
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
		atomic:   false,
	}

	for _, apply := range opts {
		apply(store)
	}

	return store
}

// Path returns the cleaned file path.
func (s *Store) Path() string {
	return s.path
}

// Fetch returns the file contents.
// When nothing exists at the path the returned error matches fs.ErrNotExist. That
// includes paths running through a regular file, which stat reports as ENOTDIR.
func (s *Store) Fetch() ([]byte, error) {
	stat, err := s.fs.Stat(s.path)
	if err != nil {
		if errors.Is(err, syscall.ENOTDIR) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", fs.ErrNotExist, err)
		}

		return nil, err
	}

	if stat.IsDir() {
		return nil, ErrPathIsDirectory
	}

	return afero.ReadFile(s.fs, s.path)
}

// MkdirAll creates the parent directory of the file and any missing ancestors.
func (s *Store) MkdirAll() error {
	return s.fs.MkdirAll(filepath.Dir(s.path), s.dirMode)
}

// Write replaces the file contents with data.
func (s *Store) Write(data []byte) error {
	if s.atomic {
		return s.writeAtomic(data)
	}

	return afero.WriteFile(s.fs, s.path, data, s.fileMode)
}

func (s *Store) writeAtomic(data []byte) (err error) {
	tmp, err := afero.TempFile(s.fs, filepath.Dir(s.path), filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = s.fs.Remove(tmpPath)
		}
	}()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()

		return fmt.Errorf("write temp file: %w", err)
	}

	err = tmp.Sync()
	if err != nil {
		_ = tmp.Close()

		return fmt.Errorf("sync temp file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	err = s.fs.Chmod(tmpPath, s.fileMode)
	if err != nil {
		return fmt.Errorf("set temp file permissions: %w", err)
	}

	err = s.fs.Rename(tmpPath, s.path)
	if err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
