package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
)

// ErrRead is returned when the configuration file exists but cannot be read.
var ErrRead = errors.New("read config")

// ErrParse is returned when the configuration data is not valid JSON or does not match the target type.
var ErrParse = errors.New("parse config")

// ErrDirectory is returned when the parent directory of the configuration file cannot be created.
var ErrDirectory = errors.New("create config directory")

// ErrSerialize is returned when the configuration value cannot be encoded.
var ErrSerialize = errors.New("serialize config")

// ErrWrite is returned when the encoded configuration cannot be written.
var ErrWrite = errors.New("write config")

// ErrNilValue is returned when a nil value is passed for saving.
var ErrNilValue = errors.New("value must not be nil")

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The section parameter selects a nested object using colon (:) as the separator,
// e.g. "services:api". An empty section parses the entire document.
// Parse decodes over the current contents of target, so fields absent from the
// data keep the values target already holds.
type Parser interface {
	Parse(data []byte, target any, section string) error
}

// Encoder defines an interface for serializing a configuration value.
type Encoder interface {
	Encode(value any) ([]byte, error)
}

// DataFetcher defines an interface for reading configuration data.
// Fetch must return an error matching fs.ErrNotExist when there is nothing to read.
type DataFetcher interface {
	Fetch() ([]byte, error)
	Path() string
}

// DataWriter defines an interface for persisting configuration data.
type DataWriter interface {
	MkdirAll() error
	Write(data []byte) error
	Path() string
}

// Defaulter defines an interface for setting default values in configuration structures.
// Types whose pointer implements it get SetDefaults called on a zero value to build their default.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches and parses configuration data into a new *T.
// When the fetcher reports a missing source, the default value of T is returned instead.
func Provider[T any](section string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		return provide[T](parser, fetcher, section, slog.Default())
	}
}

// Persist encodes value and writes it through w, creating the parent directory first.
func Persist[T any](value *T, enc Encoder, w DataWriter) error {
	return persist(value, enc, w)
}

func provide[T any](parser Parser, fetcher DataFetcher, section string, logger *slog.Logger) (*T, error) {
	target := defaultValue[T](fetcher.Path(), logger)

	data, err := fetcher.Fetch()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("config file not found, using defaults", slog.String("path", fetcher.Path()))

			return target, nil
		}

		return nil, fmt.Errorf("%w %q: %w", ErrRead, fetcher.Path(), err)
	}

	err = parser.Parse(data, target, section)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParse, fetcher.Path(), err)
	}

	return target, nil
}

func persist[T any](value *T, enc Encoder, w DataWriter) error {
	if value == nil {
		return fmt.Errorf("%w %q: %w", ErrSerialize, w.Path(), ErrNilValue)
	}

	err := w.MkdirAll()
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrDirectory, filepath.Dir(w.Path()), err)
	}

	data, err := enc.Encode(value)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSerialize, w.Path(), err)
	}

	err = w.Write(data)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrWrite, w.Path(), err)
	}

	return nil
}

func defaultValue[T any](path string, logger *slog.Logger) *T {
	target := new(T)

	defaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter && defaulter.SetDefaults() {
		logger.Debug("defaults applied", slog.String("path", path))
	}

	return target
}
