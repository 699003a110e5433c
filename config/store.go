package config

import "log/slog"

// Load reads the JSON file at path into a value of type T.
//
// A missing file is not an error: the default of T is returned, which is the zero
// value with SetDefaults applied when *T implements Defaulter. Any other failure
// matches ErrRead or ErrParse.
func Load[T any](path string, opts ...Option) (T, error) {
	options := newOptions(opts)

	target, err := provide[T](options.codec(), options.store(path), options.Section, options.Logger)
	if err != nil {
		var zero T

		return zero, err
	}

	return *target, nil
}

// Save writes value to path as indented JSON, creating missing parent directories.
// An existing file is replaced in full. Failures match ErrDirectory, ErrSerialize or ErrWrite.
func Save[T any](value *T, path string, opts ...Option) error {
	options := newOptions(opts)

	err := persist(value, options.codec(), options.store(path))
	if err != nil {
		return err
	}

	options.Logger.Debug("config saved", slog.String("path", path))

	return nil
}
