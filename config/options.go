package config

import (
	"io/fs"
	"log/slog"

	jsoncodec "github.com/0xalexb/hjarta-jsonconf/config/codec/json"
	filestore "github.com/0xalexb/hjarta-jsonconf/config/file"

	"github.com/spf13/afero"
)

// Options holds settings shared by Load, Save and NewModule.
type Options struct {
	// Fs is the filesystem configuration files live on. Defaults to the OS filesystem.
	Fs afero.Fs
	// Logger receives debug records. Defaults to slog.Default().
	Logger *slog.Logger
	// Section restricts loading to a nested object, e.g. "services:api".
	Section string
	// Strict rejects unknown fields when loading.
	Strict bool
	// Indent is the per-level indentation of saved files.
	Indent string
	// FileMode is the permission of newly written files.
	FileMode fs.FileMode
	// DirMode is the permission of created directories.
	DirMode fs.FileMode
	// AtomicWrite replaces the file through a synced temp file and a rename.
	AtomicWrite bool
	// SaveOnStop makes NewModule save the value when the application stops.
	SaveOnStop bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	if o.Indent == "" {
		o.Indent = jsoncodec.DefaultIndent
	}

	if o.FileMode == 0 {
		o.FileMode = filestore.DefaultFileMode
	}

	if o.DirMode == 0 {
		o.DirMode = filestore.DefaultDirMode
	}
}

// WithFs sets the filesystem used for reading and writing.
func WithFs(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.Fs = fsys
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithSection loads only the object found at the colon-separated section path.
func WithSection(section string) Option {
	return func(opts *Options) {
		opts.Section = section
	}
}

// WithStrict makes loading fail on fields the target type does not declare.
func WithStrict() Option {
	return func(opts *Options) {
		opts.Strict = true
	}
}

// WithIndent sets the indentation used when saving.
// An empty indent keeps the default; saved files are always pretty-printed.
func WithIndent(indent string) Option {
	return func(opts *Options) {
		opts.Indent = indent
	}
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(mode fs.FileMode) Option {
	return func(opts *Options) {
		opts.FileMode = mode
	}
}

// WithDirMode sets the permission bits of created directories.
func WithDirMode(mode fs.FileMode) Option {
	return func(opts *Options) {
		opts.DirMode = mode
	}
}

// WithAtomicWrite enables write-to-temp-then-rename saving.
func WithAtomicWrite() Option {
	return func(opts *Options) {
		opts.AtomicWrite = true
	}
}

// WithSaveOnStop makes NewModule persist the provided value on application stop.
// Load and Save ignore it.
func WithSaveOnStop() Option {
	return func(opts *Options) {
		opts.SaveOnStop = true
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	options.SetDefaults()

	return options
}

func (o *Options) store(path string) *filestore.Store {
	storeOpts := []filestore.Option{
		filestore.WithFileMode(o.FileMode),
		filestore.WithDirMode(o.DirMode),
	}

	if o.AtomicWrite {
		storeOpts = append(storeOpts, filestore.WithAtomicWrite())
	}

	return filestore.NewStore(o.Fs, path, storeOpts...)
}

func (o *Options) codec() *jsoncodec.Codec {
	codecOpts := []jsoncodec.Option{jsoncodec.WithIndent(o.Indent)}

	if o.Strict {
		codecOpts = append(codecOpts, jsoncodec.WithStrict())
	}

	return jsoncodec.NewCodec(codecOpts...)
}
