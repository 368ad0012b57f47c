package persistence

import (
	"path/filepath"
	"testing"

	"github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/crm"
	"github.com/bizos/backend/internal/domain/finance"
	"github.com/bizos/backend/internal/domain/hr"
	"github.com/bizos/backend/internal/domain/identity"
	"github.com/bizos/backend/internal/domain/inventory"
	"github.com/bizos/backend/internal/domain/operations"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a file-backed sqlite database in a temp dir and migrates
// the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewSQLiteDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.DB.AutoMigrate(
		&identity.User{},
		&business.Profile{},
		&hr.JobPosting{},
		&hr.Candidate{},
		&finance.Expense{},
		&crm.Client{},
		&operations.Task{},
		&inventory.Item{},
		&inventory.Vendor{},
	))
	return db.DB
}
