// Package reconcile compares the upload ledger against the objects actually
// stored in the bucket.
//
// Both sides are loaded as in-memory key sets concurrently: the ledger from its
// uploaded records and the bucket from a single recursive listing, so no
// per-object HEAD calls are made. The union of keys is then classified as ok,
// missing_storage (recorded but gone) or untracked (stored but never recorded).
//
// A Cache keeps built indices for a TTL and uses singleflight so concurrent
// callers share one rebuild.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Prefix: cfg.Storage.KeyPrefix}
//	report, err := reconcile.Run(ctx, spec,
//	    reconcile.SourceFunc(repo.UploadedKeys),
//	    reconcile.StorageSource{Client: client, Bucket: bucket, Prefix: spec.Prefix},
//	)
package reconcile
