package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"asset-uploader/core/storage"
	"asset-uploader/core/storage/mocks"
	"asset-uploader/feature/objects"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, req objects.UploadRequest, opts objects.UploadOptions) (*objects.UploadResult, error) {
	args := m.Called(ctx, req, opts)
	if res, ok := args.Get(0).(*objects.UploadResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, result FileResult) error {
	return m.Called(ctx, result).Error(0)
}

func forPath(path string) any {
	return mock.MatchedBy(func(req objects.UploadRequest) bool { return req.LocalPath == path })
}

func TestDriver_ImageFolderScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"/images/a.png":     500,
		"/images/b.txt":     10,
		"/images/sub/c.jpg": 200,
	})

	uploader := new(mockUploader)
	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(req objects.UploadRequest) bool {
		return req.LocalPath == "/images/a.png" && req.SizeBytes == 500 && req.MimeType == "image/png"
	}), objects.UploadOptions{}).Return(&objects.UploadResult{Key: "a-1.png", URL: "https://b.host/a-1.png"}, nil)
	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(req objects.UploadRequest) bool {
		return req.LocalPath == "/images/sub/c.jpg" && req.SizeBytes == 200 && req.MimeType == "image/jpg"
	}), objects.UploadOptions{}).Return(&objects.UploadResult{Key: "c-2.jpg", URL: "https://b.host/c-2.jpg"}, nil)

	driver := NewDriver(uploader, fs, zap.NewNop(), nil)
	report := driver.Run(context.Background(), "/images", Options{
		WalkOptions: WalkOptions{Filter: Images, Recursive: true},
	})

	assert.Equal(t, 2, report.Uploaded)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, report.Results, 2)
	for _, r := range report.Results {
		assert.Equal(t, StateUploaded, r.State)
		assert.NotEqual(t, "b.txt", r.Name)
	}
	uploader.AssertNumberOfCalls(t, "Upload", 2)
}

func TestDriver_FailureDoesNotAbortBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{
		"/batch/1.png": 1,
		"/batch/2.png": 1,
		"/batch/3.png": 1,
	})

	uploader := new(mockUploader)
	uploader.On("Upload", mock.Anything, forPath("/batch/1.png"), mock.Anything).Return(&objects.UploadResult{Key: "1"}, nil)
	uploader.On("Upload", mock.Anything, forPath("/batch/2.png"), mock.Anything).Return(nil, objects.ErrUpload)
	uploader.On("Upload", mock.Anything, forPath("/batch/3.png"), mock.Anything).Return(&objects.UploadResult{Key: "3"}, nil)

	var reported []FileResult
	driver := NewDriver(uploader, fs, zap.NewNop(), nil)
	report := driver.Run(context.Background(), "/batch", Options{
		WalkOptions: WalkOptions{Filter: Images, Recursive: true},
		OnResult:    func(r FileResult) { reported = append(reported, r) },
	})

	assert.Equal(t, 2, report.Uploaded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, reported, 3)

	byName := map[string]FileResult{}
	for _, r := range reported {
		byName[r.Name] = r
	}
	assert.Equal(t, StateFailed, byName["2.png"].State)
	assert.ErrorIs(t, byName["2.png"].Err, objects.ErrUpload)
	assert.Equal(t, StateUploaded, byName["3.png"].State)
	uploader.AssertExpectations(t)
}

func TestDriver_ProtectedAndRecorder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{"/docs/clip.mp4": 64})

	uploader := new(mockUploader)
	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(req objects.UploadRequest) bool {
		return req.IsPrivate && req.MimeType == "video/mp4"
	}), objects.UploadOptions{Protected: true}).Return(&objects.UploadResult{Key: "clip-1.mp4"}, nil)

	recorder := new(mockRecorder)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(r FileResult) bool {
		return r.Key == "clip-1.mp4" && r.SizeBytes == 64
	})).Return(errors.New("ledger offline"))

	driver := NewDriver(uploader, fs, zap.NewNop(), recorder)
	report := driver.Run(context.Background(), "/docs", Options{
		WalkOptions: WalkOptions{Filter: ImagesAndVideo, Recursive: true},
		Protected:   true,
	})

	// A recorder failure is only a warning.
	assert.Equal(t, 1, report.Uploaded)
	recorder.AssertExpectations(t)
}

func TestDriver_MissingRoot(t *testing.T) {
	uploader := new(mockUploader)
	driver := NewDriver(uploader, afero.NewMemMapFs(), zap.NewNop(), nil)

	report := driver.Run(context.Background(), "/missing", Options{WalkOptions: WalkOptions{Recursive: true}})
	assert.Equal(t, 0, report.Uploaded)
	assert.Equal(t, 1, report.Failed)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestDriver_CanceledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{"/c/a.png": 1, "/c/b.png": 1})

	uploader := new(mockUploader)
	ctx, cancel := context.WithCancel(context.Background())
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(&objects.UploadResult{Key: "k"}, nil)

	driver := NewDriver(uploader, fs, zap.NewNop(), nil)
	report := driver.Run(ctx, "/c", Options{WalkOptions: WalkOptions{Recursive: true}})

	assert.True(t, report.Canceled)
	assert.Equal(t, 1, report.Uploaded)
	uploader.AssertNumberOfCalls(t, "Upload", 1)
}

func TestDriver_WithObjectService(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]int{"/site/logo.png": 12, "/site/readme.txt": 3})

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "media", "logo-1700000000000.png", mock.Anything, int64(12),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "image/png" && opts.UserMetadata["x-amz-acl"] == objects.ACLPublicRead
		})).Return(minio.UploadInfo{}, nil)

	svc := objects.NewService(client, storage.Config{Endpoint: "https://s3.amazonaws.com", Bucket: "media"}, zap.NewNop(),
		objects.WithFs(fs),
		objects.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
	)

	report := NewDriver(svc, fs, zap.NewNop(), nil).Run(context.Background(), "/site", Options{
		WalkOptions: WalkOptions{Filter: Images, Recursive: true},
	})

	require.Equal(t, 1, report.Uploaded)
	assert.Equal(t, "https://media.s3.amazonaws.com/logo-1700000000000.png", report.Results[0].URL)
	client.AssertExpectations(t)
}
