package objects

import (
	"io"
)

const (
	// ACLPublicRead makes an object readable by anyone.
	ACLPublicRead = "public-read"
	// ACLPrivate restricts an object to authenticated access.
	ACLPrivate = "private"
)

// UploadRequest describes a local file to upload.
type UploadRequest struct {
	// LocalPath is the file on disk holding the content.
	LocalPath string
	// DisplayName is the original file name; its base name and extension shape the key.
	DisplayName string
	// MimeType is stored as the object's Content-Type.
	MimeType string
	// SizeBytes is the exact content length. Zero or negative means unknown and is
	// taken from the file when it is opened.
	SizeBytes int64
	// IsPrivate stores the object with a private ACL, like UploadOptions.Protected.
	IsPrivate bool
}

// UploadOptions tunes a single Upload call.
type UploadOptions struct {
	// Protected stores the object with a private ACL.
	Protected bool
}

// UploadResult identifies an uploaded object.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ObjectRef identifies a stored object.
type ObjectRef struct {
	Key string `json:"key"`
}

// StreamFileMeta describes an object whose bytes are produced incrementally.
type StreamFileMeta struct {
	// Name is the key stem, without extension.
	Name string
	// Ext is the extension without the leading dot.
	Ext string
	// ContentType is stored as the object's Content-Type.
	ContentType string
	// IsPrivate defaults to true when nil.
	IsPrivate *bool
}

// StreamDescriptor is a writable handle on an in-flight upload.
// Closing Writer finishes the body; Wait blocks until the storage call returns.
type StreamDescriptor struct {
	Writer io.WriteCloser
	URL    string
	Key    string

	done   chan struct{}
	result UploadResult
	err    error
}

// Wait blocks until the upload completes and returns its outcome.
func (d *StreamDescriptor) Wait() (UploadResult, error) {
	<-d.done
	return d.result, d.err
}

// Done is closed once the upload has completed.
func (d *StreamDescriptor) Done() <-chan struct{} {
	return d.done
}

// DeleteResult reports the outcome of a best-effort delete.
// Callers may inspect it but are not required to.
type DeleteResult struct {
	Key string `json:"key"`
	Err error  `json:"-"`
}

// OK reports whether the delete succeeded.
func (r DeleteResult) OK() bool {
	return r.Err == nil
}
