// Package config loads and saves typed configuration values as JSON files.
//
// Load and Save are the everyday entry points:
//
//	type Settings struct {
//	    Theme string `json:"theme"`
//	    Limit int    `json:"limit"`
//	}
//
//	// SetDefaults makes Settings a Defaulter; Load uses it when the file is missing
//	// and as the base the file is decoded over.
//	func (s *Settings) SetDefaults() bool {
//	    s.Theme, s.Limit = "dark", 10
//	    return true
//	}
//
//	settings, err := config.Load[Settings](path)
//	settings.Limit = 20
//	err = config.Save(&settings, path)
//
// A missing file is a normal outcome of Load, never an error. Every failure
// wraps one sentinel so callers can tell them apart with errors.Is:
//   - ErrRead: the file exists but cannot be read (including directories)
//   - ErrParse: the content is not valid JSON for the target type
//   - ErrDirectory: the parent directory cannot be created
//   - ErrSerialize: the value cannot be encoded
//   - ErrWrite: the encoded bytes cannot be written
//
// The underlying cause stays in the chain, e.g. errors.Is(err, fs.ErrPermission).
//
// # Extension Points
//
// The package keeps four interfaces so storage and encoding can be swapped:
//   - Parser: decodes raw data into the target, with section support
//   - Encoder: serializes a value
//   - DataFetcher: retrieves raw data (see config/file)
//   - DataWriter: creates the parent directory and writes raw data
//
// Provider and Persist compose them directly; Load and Save wire the defaults
// from config/file and config/codec/json.
//
// Saving is a plain truncate-and-write unless WithAtomicWrite is given, and no
// locking is done: concurrent writers to one path race, the last one wins.
package config
