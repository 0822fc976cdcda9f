package object

import (
	"context"
	"io"
)

// ObjectStore saves and retrieves binary objects, primarily selfie uploads
// keyed under a per-user namespace. Save returns the storage key along with
// the byte count and sniffed MIME type of the stored object.
type ObjectStore interface {
	Save(ctx context.Context, userId string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
