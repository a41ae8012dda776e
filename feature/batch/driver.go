package batch

import (
	"context"
	"fmt"
	"time"

	"asset-uploader/feature/objects"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// State is the lifecycle state of one file in a batch.
type State string

const (
	StatePending   State = "pending"
	StateUploading State = "uploading"
	StateUploaded  State = "uploaded"
	StateFailed    State = "failed"
)

// Uploader is the part of objects.Service the driver needs.
type Uploader interface {
	Upload(ctx context.Context, req objects.UploadRequest, opts objects.UploadOptions) (*objects.UploadResult, error)
}

// Recorder persists batch outcomes, e.g. the upload ledger.
type Recorder interface {
	Record(ctx context.Context, result FileResult) error
}

// FileResult is the outcome of one file.
type FileResult struct {
	Path      string
	Name      string
	SizeBytes int64
	State     State
	Key       string
	URL       string
	Err       error
	Duration  time.Duration
}

// Report summarises a batch run.
type Report struct {
	Results  []FileResult
	Uploaded int
	Failed   int
	// Canceled is set when the context ended before the walk was exhausted.
	Canceled bool
}

// Options configures a batch run.
type Options struct {
	WalkOptions
	// Protected uploads every file with a private ACL.
	Protected bool
	// OnResult is called after each file reaches a final state.
	OnResult func(FileResult)
}

// Driver uploads the files of a folder one after another.
type Driver struct {
	uploader Uploader
	fs       afero.Fs
	logger   *zap.Logger
	recorder Recorder
}

// NewDriver creates a batch driver. recorder may be nil.
func NewDriver(uploader Uploader, fs afero.Fs, logger *zap.Logger, recorder Recorder) *Driver {
	return &Driver{
		uploader: uploader,
		fs:       fs,
		logger:   logger,
		recorder: recorder,
	}
}

// Run walks root and uploads every selected file sequentially.
// A failing file is logged and reported; it never stops the batch.
// Cancelling ctx stops the run before the next file.
func (d *Driver) Run(ctx context.Context, root string, opts Options) *Report {
	report := &Report{}

	for entry, walkErr := range Walk(d.fs, root, opts.WalkOptions) {
		if ctx.Err() != nil {
			report.Canceled = true
			break
		}

		var result FileResult
		if walkErr != nil {
			result = FileResult{Path: entry.Path, Name: entry.Name, State: StateFailed, Err: walkErr}
			d.logger.Error("Failed to read entry", zap.String("path", entry.Path), zap.Error(walkErr))
		} else {
			result = d.uploadOne(ctx, entry, opts.Protected)
		}

		report.Results = append(report.Results, result)
		if result.State == StateUploaded {
			report.Uploaded++
		} else {
			report.Failed++
		}

		if d.recorder != nil {
			if err := d.recorder.Record(ctx, result); err != nil {
				d.logger.Warn("Failed to record upload", zap.String("path", result.Path), zap.Error(err))
			}
		}
		if opts.OnResult != nil {
			opts.OnResult(result)
		}
	}

	return report
}

func (d *Driver) uploadOne(ctx context.Context, entry Entry, protected bool) FileResult {
	result := FileResult{Path: entry.Path, Name: entry.Name, State: StatePending}
	start := time.Now()

	info, err := d.fs.Stat(entry.Path)
	if err != nil {
		result.State = StateFailed
		result.Err = fmt.Errorf("stat %s: %w", entry.Path, err)
		d.logger.Error("Failed to stat file", zap.String("path", entry.Path), zap.Error(err))
		return result
	}
	result.SizeBytes = info.Size()

	req := objects.UploadRequest{
		LocalPath:   entry.Path,
		DisplayName: entry.Name,
		MimeType:    MimeType(entry.Name),
		SizeBytes:   info.Size(),
		IsPrivate:   protected,
	}

	result.State = StateUploading
	d.logger.Debug("Uploading file", zap.String("path", entry.Path), zap.Int64("size", req.SizeBytes))

	res, err := d.uploader.Upload(ctx, req, objects.UploadOptions{Protected: protected})
	result.Duration = time.Since(start)
	if err != nil {
		result.State = StateFailed
		result.Err = err
		d.logger.Error("Error uploading file", zap.String("path", entry.Path), zap.Error(err))
		return result
	}

	result.State = StateUploaded
	result.Key = res.Key
	result.URL = res.URL
	d.logger.Info("File uploaded successfully",
		zap.String("path", entry.Path),
		zap.String("key", res.Key),
		zap.String("url", res.URL),
	)
	return result
}
