package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where generated documents (payslip and invoice PDFs)
// and uploaded attachments live.
type FileStorage interface {
	// Save writes a file under the given relative path and returns the
	// stored path.
	Save(ctx context.Context, file io.Reader, path string) (string, error)

	// Open retrieves a stored file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// URL returns a public URL for a stored path.
	URL(path string) string

	// Exists reports whether a stored file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
