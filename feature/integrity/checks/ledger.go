package checks

import (
	"context"

	"asset-uploader/feature/ledger"

	"gorm.io/gorm"
)

// LedgerReport describes the state of the optional upload ledger.
type LedgerReport struct {
	Enabled   bool   `json:"enabled"`
	Reachable bool   `json:"reachable"`
	Records   int64  `json:"records"`
	Error     string `json:"error,omitempty"`
}

// CheckLedger pings the ledger database and counts its records.
// A nil db means the ledger is disabled, which is not an error.
func CheckLedger(ctx context.Context, db *gorm.DB) *LedgerReport {
	report := &LedgerReport{}
	if db == nil {
		return report
	}
	report.Enabled = true

	sqlDB, err := db.DB()
	if err != nil {
		report.Error = err.Error()
		return report
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		report.Error = err.Error()
		return report
	}
	report.Reachable = true

	if err := db.WithContext(ctx).Model(&ledger.UploadRecord{}).Count(&report.Records).Error; err != nil {
		report.Error = err.Error()
	}
	return report
}
