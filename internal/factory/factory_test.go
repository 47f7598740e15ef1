package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betalabs/feedback-intake/internal/storage/memory"
	sqlitestorage "github.com/betalabs/feedback-intake/internal/storage/sqlite"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.False(t, app.Mirror.Available())
	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.SubmissionService)
}

func TestNewWithSQLiteStorage(t *testing.T) {
	app, err := New(context.Background(), Config{
		StorageType:  StorageTypeSQLite,
		SQLiteConfig: &sqlitestorage.Config{DSN: ":memory:"},
	})
	require.NoError(t, err)

	assert.IsType(t, &sqlitestorage.Storage{}, app.Storage)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "postgres"})
	assert.Error(t, err)
}
