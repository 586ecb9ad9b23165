package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"postboard/internal/config"
	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		DBDriver:      config.DriverSQLite,
		DatabaseURL:   ":memory:",
		DBAutoMigrate: true,
	}
}

func TestConnect_SQLiteMigratesSchema(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)
	defer func() { _ = Close(db) }()

	assert.True(t, db.Migrator().HasTable(&models.Account{}))
	assert.True(t, db.Migrator().HasTable(&models.Post{}))
	assert.True(t, db.Migrator().HasIndex(&models.Account{}, "Name"))
	assert.True(t, db.Migrator().HasIndex(&models.Account{}, "Email"))
	assert.NoError(t, Ping(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestConnect_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)
	defer func() { _ = Close(db) }()

	err = db.Create(&models.Post{Title: "dangling", OwnerID: 404}).Error
	assert.Error(t, err)
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle", DatabaseURL: "x"})
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "file:test.db?cache=shared&_foreign_keys=on", sqliteDSN("file:test.db?cache=shared"))
	assert.Equal(t, "app.db?_fk=1", sqliteDSN("app.db?_fk=1"))
}

func TestCustomGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record-not-found is not an error")

	l.Trace(ctx, time.Now(), fc, errors.New("relation does not exist"))
	assert.Contains(t, buf.String(), "GORM query error")

	buf.Reset()
	l.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(ctx, time.Now().Add(-time.Second), fc, nil)
	assert.Empty(t, buf.String())
}
