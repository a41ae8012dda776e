package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		db, err := Connect(Config{})
		assert.True(t, errors.Is(err, ErrDisabled))
		assert.Nil(t, db)
	})

	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Enabled:        true,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "uploads",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDSN(t *testing.T) {
	dsn := DSN(Config{Host: "db", Port: 3306, User: "app", Password: "p@ss:word", Name: "uploads", TimeoutSeconds: 5})
	assert.Equal(t, "app:p%40ss%3Aword@tcp(db:3306)/uploads?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s&readTimeout=5s&writeTimeout=5s", dsn)
}
