// Package file provides a file-based DataFetcher and DataWriter for the config package.
//
// A Store is bound to one path on an afero.Fs, which lets tests run against
// afero.NewMemMapFs() and production code against the OS filesystem. Every
// call goes to the filesystem; nothing is cached.
//
// Usage:
//
//	store := file.NewStore(afero.NewOsFs(), "/home/me/.app/settings.json")
//	data, err := store.Fetch()
//	if errors.Is(err, fs.ErrNotExist) {
//	    // nothing saved yet
//	}
//
// Writing:
//   - MkdirAll creates the parent directory tree (DefaultDirMode unless overridden)
//   - Write truncates and rewrites the file (DefaultFileMode unless overridden)
//   - WithAtomicWrite routes Write through a synced temp file and a rename
//
// Error Handling:
//   - Missing files surface as the underlying stat error, matching fs.ErrNotExist
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory paths
package file
