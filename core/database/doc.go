// Package database handles the optional MySQL connection backing the upload ledger.
//
// It wraps GORM with the MySQL dialector. Connect returns ErrDisabled unless
// DATABASE_ENABLED is set, and bounds the initial ping with the configured timeout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Upload ledger unavailable", zap.Error(err))
//	}
package database
