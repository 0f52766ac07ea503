// Package blobstore stores opaque binary objects keyed by string, tagged with
// string metadata. Implementations exist for memory, MinIO and Amazon S3.
package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("blob not found")

// ObjectInfo describes a stored object. Metadata keys are lower-case.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Object is an open object. The caller must close Body.
type Object struct {
	ObjectInfo
	Body io.ReadCloser
}

// Store is the blob store contract used by the resume manager.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) error
	Get(ctx context.Context, key string) (*Object, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

func normalizeMetadata(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
