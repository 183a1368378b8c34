package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database with the symbols table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Each pooled connection would get its own in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&SymbolModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedSymbol inserts one symbol row.
func seedSymbol(t *testing.T, db *gorm.DB, code string, isActive bool, sortKey int) {
	t.Helper()

	m := &SymbolModel{Code: code, Name: code + " Inc.", Market: "NASDAQ", IsActive: true, SortKey: sortKey}
	require.NoError(t, db.Create(m).Error, "failed to seed symbol")
	// SQLite applies the column default on INSERT for false booleans, so update explicitly.
	if !isActive {
		require.NoError(t, db.Model(m).Update("is_active", false).Error)
	}
}

func TestNewSymbolRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

func TestSymbolGorm_ListActiveCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, db *gorm.DB)
		want  []string
	}{
		{
			name: "ordered by sort key",
			setup: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "MSFT", true, 3)
				seedSymbol(t, db, "AAPL", true, 1)
				seedSymbol(t, db, "AMZN", true, 2)
			},
			want: []string{"AAPL", "AMZN", "MSFT"},
		},
		{
			name: "inactive symbols excluded",
			setup: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "AAPL", true, 1)
				seedSymbol(t, db, "TWTR", false, 2)
			},
			want: []string{"AAPL"},
		},
		{
			name:  "empty table",
			setup: func(t *testing.T, db *gorm.DB) {},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			tt.setup(t, db)

			got, err := NewSymbolRepository(db).ListActiveCodes(context.Background())

			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
