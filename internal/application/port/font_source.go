package port

import "io"

// FontSource is one file handed to the import pipeline.
type FontSource interface {
	// Name returns the original file name including its extension.
	Name() string
	Open() (io.ReadCloser, error)
}
