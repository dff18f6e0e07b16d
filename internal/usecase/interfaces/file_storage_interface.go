package interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned by Open when the blob does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// IFileStorage stores attachment blobs. Paths are storage-relative keys.
type IFileStorage interface {
	Save(ctx context.Context, originalName string, r io.Reader) (path string, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
