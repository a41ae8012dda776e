package ledger

import "time"

// UploadRecord is one row of the upload ledger.
type UploadRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocalPath  string    `gorm:"column:local_path;size:1024" json:"local_path"`
	Name       string    `gorm:"column:name;size:255" json:"name"`
	ObjectKey  string    `gorm:"column:object_key;size:1024;index" json:"key"`
	URL        string    `gorm:"column:url;size:2048" json:"url"`
	SizeBytes  int64     `gorm:"column:size_bytes" json:"size_bytes"`
	Status     string    `gorm:"column:status;size:32;index" json:"status"`
	Error      string    `gorm:"column:error;type:text" json:"error,omitempty"`
	DurationMs int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name used by UploadRecord.
func (UploadRecord) TableName() string {
	return "upload_records"
}
