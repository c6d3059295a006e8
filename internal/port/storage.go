package port

import "context"

// ObjectStorage abstracts the object store documents are fetched from when
// a request references a stored object instead of carrying inline bytes.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
