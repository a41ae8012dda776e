package objects

import "errors"

var (
	// ErrUpload wraps storage failures while putting an object.
	ErrUpload = errors.New("upload failed")
	// ErrDelete wraps storage failures while removing an object.
	ErrDelete = errors.New("delete failed")
	// ErrDownload wraps storage failures while reading an object.
	ErrDownload = errors.New("download failed")
	// ErrNotFound reports a missing object.
	ErrNotFound = errors.New("object not found")
	// ErrPresign wraps failures while signing a URL.
	ErrPresign = errors.New("presign failed")
	// ErrMissingKey reports an empty object reference.
	ErrMissingKey = errors.New("object key is required")
)
