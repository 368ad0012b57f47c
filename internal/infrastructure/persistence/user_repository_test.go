package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizos/backend/internal/domain/identity"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormUserRepositorySQL(t *testing.T) {
	t.Run("api key lookup filters on hash", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormUserRepository(db)

		id := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "email", "display_name", "password_hash", "api_key_hash", "status"}).
			AddRow(id, now, now, "ada@example.com", "Ada", "x", "abc123", "active")

		mock.ExpectQuery(`SELECT .* FROM "users" WHERE api_key_hash = \$1`).
			WithArgs("abc123", 1).
			WillReturnRows(rows)

		user, err := repo.FindByAPIKeyHash(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormUserRepository(db)

		mock.ExpectQuery(`SELECT .* FROM "users" WHERE api_key_hash = \$1`).
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByAPIKeyHash(context.Background(), "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepositorySQLite(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("ada@example.com", "Ada", "s3cretpass", "bos_live_key")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	t.Run("find by email is case preserved as stored", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("find by api key hash", func(t *testing.T) {
		found, err := repo.FindByAPIKeyHash(ctx, identity.HashAPIKey("bos_live_key"))
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = repo.FindByAPIKeyHash(ctx, identity.HashAPIKey("wrong"))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
