package reconcile

import (
	"context"
	"fmt"

	"asset-uploader/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source yields the set of object keys known to one side of the reconciliation.
type Source interface {
	Keys(ctx context.Context) (map[string]struct{}, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (map[string]struct{}, error)

// Keys calls f.
func (f SourceFunc) Keys(ctx context.Context) (map[string]struct{}, error) {
	return f(ctx)
}

// StorageSource lists every key under a prefix in one recursive pass.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Keys implements Source.
func (s StorageSource) Keys(ctx context.Context) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	opts := minio.ListObjectsOptions{
		Prefix:    s.Prefix,
		Recursive: true,
	}

	for obj := range s.Client.ListObjects(ctx, s.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list storage objects: %w", obj.Err)
		}
		set[obj.Key] = struct{}{}
	}
	return set, nil
}
