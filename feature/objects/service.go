package objects

import (
	"context"
	"fmt"
	"io"
	"time"

	"asset-uploader/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// aclHeader carries the canned ACL; minio forwards x-amz-acl metadata as a header.
const aclHeader = "x-amz-acl"

// streamPartSize bounds the buffer minio allocates for puts of unknown length.
const streamPartSize = 5 << 20

// Service performs object operations against the configured bucket.
// It is safe for concurrent use.
type Service struct {
	client storage.Client
	cfg    storage.Config
	fs     afero.Fs
	logger *zap.Logger
	clock  *keyClock
}

// Option customizes a Service.
type Option func(*Service)

// WithFs sets the filesystem local upload paths are opened from.
func WithFs(fs afero.Fs) Option {
	return func(s *Service) { s.fs = fs }
}

// WithClock sets the time source used for key timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.clock = newKeyClock(now) }
}

// NewService creates a new object service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		client: client,
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		logger: logger,
		clock:  newKeyClock(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bucket returns the bucket this service writes to.
func (s *Service) Bucket() string {
	return s.cfg.Bucket
}

// PresignTTL returns the lifetime of presigned download URLs.
func (s *Service) PresignTTL() time.Duration {
	return s.cfg.PresignTTL()
}

// Upload stores the local file under a fresh timestamped key.
// The object is public-read unless opts.Protected or req.IsPrivate is set.
// A non-positive SizeBytes is replaced by the size of the opened file.
func (s *Service) Upload(ctx context.Context, req UploadRequest, opts UploadOptions) (*UploadResult, error) {
	name := req.DisplayName
	if name == "" {
		name = req.LocalPath
	}
	key := uploadKey(s.cfg.KeyPrefix, name, s.clock.next())

	acl := ACLPublicRead
	if opts.Protected || req.IsPrivate {
		acl = ACLPrivate
	}

	f, err := s.fs.Open(req.LocalPath)
	if err != nil {
		s.logger.Error("Failed to open upload source", zap.String("path", req.LocalPath), zap.Error(err))
		return nil, fmt.Errorf("%w: open %s: %w", ErrUpload, req.LocalPath, err)
	}
	defer f.Close()

	size := req.SizeBytes
	if size <= 0 {
		size = -1
		if info, statErr := f.Stat(); statErr == nil {
			size = info.Size()
		}
	}

	putOpts := minio.PutObjectOptions{
		ContentType:  req.MimeType,
		CacheControl: s.cfg.CacheControl,
		UserMetadata: map[string]string{aclHeader: acl},
	}
	if size < 0 {
		putOpts.PartSize = streamPartSize
	}

	_, err = s.client.PutObject(ctx, s.cfg.Bucket, key, f, size, putOpts)
	if err != nil {
		s.logger.Error("Failed to upload object", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: put %s: %w", ErrUpload, key, err)
	}

	s.logger.Debug("Uploaded object", zap.String("key", key), zap.String("acl", acl))
	return &UploadResult{Key: key, URL: s.cfg.ObjectURL(key)}, nil
}

// UploadProtected uploads the file with a private ACL.
func (s *Service) UploadProtected(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	return s.Upload(ctx, req, UploadOptions{Protected: true})
}

// Delete removes the referenced object. Failures are logged and reported in the
// result, never returned as an error.
func (s *Service) Delete(ctx context.Context, ref ObjectRef) DeleteResult {
	if ref.Key == "" {
		s.logger.Error("Refusing to delete object without key")
		return DeleteResult{Err: fmt.Errorf("%w: %w", ErrDelete, ErrMissingKey)}
	}

	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, ref.Key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error("Failed to delete object", zap.String("key", ref.Key), zap.Error(err))
		return DeleteResult{Key: ref.Key, Err: fmt.Errorf("%w: %s: %w", ErrDelete, ref.Key, err)}
	}
	return DeleteResult{Key: ref.Key}
}

// GetUploadStream starts an upload whose body is written through the returned
// descriptor. Objects are private unless meta.IsPrivate is explicitly false.
// The caller must Close (or CloseWithError) the writer, then Wait for the outcome.
func (s *Service) GetUploadStream(ctx context.Context, meta StreamFileMeta) *StreamDescriptor {
	key := streamKey(s.cfg.KeyPrefix, meta.Name, meta.Ext)

	acl := ACLPrivate
	if meta.IsPrivate != nil && !*meta.IsPrivate {
		acl = ACLPublicRead
	}

	pr, pw := io.Pipe()
	desc := &StreamDescriptor{
		Writer: pw,
		URL:    s.cfg.PathStyleURL(key),
		Key:    key,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(desc.done)

		_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, pr, -1, minio.PutObjectOptions{
			ContentType:  meta.ContentType,
			UserMetadata: map[string]string{aclHeader: acl},
			PartSize:     streamPartSize,
		})
		if err != nil {
			// Unblock a writer still feeding the pipe.
			_ = pr.CloseWithError(err)
			s.logger.Error("Streamed upload failed", zap.String("key", key), zap.Error(err))
			desc.err = fmt.Errorf("%w: stream %s: %w", ErrUpload, key, err)
			return
		}
		_ = pr.Close()
		desc.result = UploadResult{Key: key, URL: desc.URL}
	}()

	return desc
}

// GetDownloadStream opens the referenced object for reading.
// The caller must close the returned reader.
func (s *Service) GetDownloadStream(ctx context.Context, ref ObjectRef) (io.ReadCloser, error) {
	if ref.Key == "" {
		return nil, ErrMissingKey
	}

	body, err := s.client.GetObject(ctx, s.cfg.Bucket, ref.Key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref.Key)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDownload, ref.Key, err)
	}
	return body, nil
}

// GetPresignedDownloadURL returns a time-limited URL granting read access to the object.
func (s *Service) GetPresignedDownloadURL(ctx context.Context, ref ObjectRef) (string, error) {
	if ref.Key == "" {
		return "", ErrMissingKey
	}

	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, ref.Key, s.cfg.PresignTTL(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrPresign, ref.Key, err)
	}
	return u.String(), nil
}
