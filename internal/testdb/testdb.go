// Package testdb opens throwaway in-memory databases for repository and
// handler tests. The production stack runs Postgres; tests use the pure-Go
// SQLite driver so they need no running server.
package testdb

import (
	"testing"

	"complaint-intake-backend/config"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Open returns a migrated in-memory database. Every call yields an isolated
// database, so tests never share state.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	// Repositories log through the package-level logger; keep it quiet here.
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	return db
}
