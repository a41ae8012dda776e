package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckLedger_Disabled(t *testing.T) {
	report := CheckLedger(context.Background(), nil)
	assert.False(t, report.Enabled)
	assert.Empty(t, report.Error)
}

func TestCheckLedger_Counts(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `upload_records`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	report := CheckLedger(context.Background(), db)
	assert.True(t, report.Enabled)
	assert.True(t, report.Reachable)
	assert.Equal(t, int64(7), report.Records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckLedger_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("table missing"))

	report := CheckLedger(context.Background(), db)
	assert.True(t, report.Reachable)
	assert.Equal(t, "table missing", report.Error)
}
