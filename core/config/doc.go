// Package config provides configuration management for the uploader.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv, overriding the process environment).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO endpoint, credentials, bucket, key prefix and object policy
//   - Log: Logging level and format
//   - Database: optional MySQL upload ledger
//
// Defaults live in the `default` struct tags of each partial config. Environment
// variables map onto nested keys, e.g. STORAGE_BUCKET -> storage.bucket.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
