package repository

import (
	"context"
	"testing"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB opens a migrated in-memory SQLite database with foreign keys enforced.
func setupTestDB(t *testing.T) *gorm.DB {
	return openSQLite(t, ":memory:")
}

// setupLooseTestDB is setupTestDB without foreign key enforcement.
func setupLooseTestDB(t *testing.T) *gorm.DB {
	return openSQLite(t, ":memory:?_foreign_keys=off")
}

func openSQLite(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{
		DBDriver:      config.DriverSQLite,
		DatabaseURL:   dsn,
		DBAutoMigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func seedAccount(t *testing.T, repo AccountRepository, name string) *models.Account {
	t.Helper()
	account := &models.Account{Name: name, Email: name + "@mail.ru", Secret: "1234"}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, repo.Create(ctx, account))
	return account
}
