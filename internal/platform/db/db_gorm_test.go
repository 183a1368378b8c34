package db

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		driver   string
		wantName string
		wantErr  bool
	}{
		{"postgres", DriverPostgres, "postgres", false},
		{"sqlite", DriverSQLite, "sqlite", false},
		{"empty defaults to sqlite", "", "sqlite", false},
		{"mysql unsupported", "mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := Dialector(tt.driver, "dsn")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestOpenDB_SQLiteWithMigration(t *testing.T) {
	t.Parallel()

	db, err := OpenDB(context.Background(), Config{
		Driver:  DriverSQLite,
		DSN:     "file::memory:",
		Migrate: []any{&widget{}},
	}, slog.Default())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Create(&widget{Name: "a"}).Error)
	var n int64
	require.NoError(t, db.Model(&widget{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestOpenDB_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := OpenDB(context.Background(), Config{Driver: "oracle"}, slog.Default())
	assert.ErrorContains(t, err, "unsupported database driver")
}
