package checks

import (
	"context"
	"errors"
	"fmt"

	"asset-uploader/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrBucketMissing is returned when the configured bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// DefaultPageSize bounds how many objects CheckBucket counts.
const DefaultPageSize = 1000

// BucketReport describes the reachability of the upload bucket.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	Prefix string `json:"prefix,omitempty"`
	// Objects counts keys under Prefix, up to one page.
	Objects int `json:"objects"`
	// Truncated is set when the page limit was hit.
	Truncated bool `json:"truncated"`
}

// CheckBucket verifies that bucket exists and counts the objects under prefix.
func CheckBucket(ctx context.Context, client storage.Client, bucket, prefix string, pageSize int) (*BucketReport, error) {
	report := &BucketReport{Bucket: bucket, Prefix: prefix}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return report, fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}
	report.Exists = true

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
		MaxKeys:   pageSize,
	}

	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return report, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		report.Objects++
		if report.Objects >= pageSize {
			report.Truncated = true
			break
		}
	}

	return report, nil
}
