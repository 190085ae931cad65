package storage

import "context"

// UploadOptions conveys upload destination metadata.
type UploadOptions struct {
	Bucket    string
	KeyPrefix string
}

// Service uploads watchlist snapshots to remote object storage.
type Service interface {
	// UploadSnapshot stores body under the options' prefix and the given key
	// and returns the resulting object location.
	UploadSnapshot(ctx context.Context, opts UploadOptions, key string, body []byte) (string, error)
}
