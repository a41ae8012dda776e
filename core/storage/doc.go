// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so that higher level
// services (see feature/objects) can be tested against the testify mock in
// core/storage/mocks. Any S3-compatible backend works: AWS S3, DigitalOcean
// Spaces, self-hosted MinIO.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (known size, or -1 for streamed bodies).
//   - GetObject: Retrieves content as a stream.
//   - StatObject: Reads object metadata.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - RemoveObject: Deletes a single object.
//   - PresignedGetObject: Signs a time-limited download URL.
//
// # URLs
//
// Config.ObjectURL builds the public link of an uploaded object, either from the
// configured public base URL or by inserting the bucket into the endpoint host.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
