// Package objects implements the object operations of the uploader.
//
// Service wraps a storage.Client configured for one bucket and exposes:
//
//   - Upload / UploadProtected: put a local file under {prefix}{base}-{millis}{ext}
//     with a public-read (or private) ACL and a long-lived Cache-Control header.
//   - Delete: best-effort removal; failures are logged and returned in a DeleteResult.
//   - GetUploadStream: writable handle for bytes produced incrementally. Private
//     unless explicitly made public, the opposite default of Upload.
//   - GetDownloadStream: reader over an object body.
//   - GetPresignedDownloadURL: time-limited signed GET URL.
//
// # Keys
//
// Timestamps come from a per-service monotonic millisecond clock, so two uploads
// of the same file from one process never share a key. Separate processes
// uploading the same name in the same millisecond can still collide.
//
// # HTTP Endpoints
//
//   - POST /objects : multipart upload (field "file", optional "private").
//   - POST /objects/stream : raw body streamed to ?name=&ext=&private=.
//   - GET /objects/download/{key} : object body.
//   - GET /objects/presign/{key} : presigned URL.
//   - DELETE /objects/{key} : best-effort delete.
package objects
