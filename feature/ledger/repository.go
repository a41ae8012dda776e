package ledger

import (
	"context"
	"fmt"

	"asset-uploader/feature/batch"

	"gorm.io/gorm"
)

const defaultRecentLimit = 20

// Repository persists batch outcomes in the upload_records table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a ledger repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the upload_records table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&UploadRecord{}); err != nil {
		return fmt.Errorf("failed to migrate upload ledger: %w", err)
	}
	return nil
}

// Record stores one batch result. It satisfies batch.Recorder.
func (r *Repository) Record(ctx context.Context, result batch.FileResult) error {
	rec := FromResult(result)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to record upload of %s: %w", result.Path, err)
	}
	return nil
}

// Recent returns the latest n records, newest first.
func (r *Repository) Recent(ctx context.Context, n int) ([]UploadRecord, error) {
	if n <= 0 {
		n = defaultRecentLimit
	}

	var records []UploadRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(n).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	return records, nil
}

// UploadedKeys returns the object keys of every successful upload.
func (r *Repository) UploadedKeys(ctx context.Context) (map[string]struct{}, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&UploadRecord{}).
		Where("status = ?", string(batch.StateUploaded)).
		Pluck("object_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load uploaded keys: %w", err)
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set, nil
}

// FromResult maps a batch result onto a ledger row.
func FromResult(result batch.FileResult) UploadRecord {
	rec := UploadRecord{
		LocalPath:  result.Path,
		Name:       result.Name,
		ObjectKey:  result.Key,
		URL:        result.URL,
		SizeBytes:  result.SizeBytes,
		Status:     string(result.State),
		DurationMs: result.Duration.Milliseconds(),
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	}
	return rec
}
