package ports

import "io"

// FileStorage stores uploaded media and serves deletions by web path.
type FileStorage interface {
	// Store writes the content under a generated name, keeping the
	// original extension, and returns the public web path.
	Store(filename string, r io.Reader) (string, error)
	// Delete removes the file behind a previously returned web path.
	// Unknown or blank paths are not an error.
	Delete(webPath string) error
}
