package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAutoMigrateCreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{
		"users", "ingredients", "meals", "meal_ingredients",
		"meal_plans", "planned_meals", "grocery_lists", "grocery_items",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestRunMigrationsUsesAutoMigrateOnSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// The migrations directory is not read for SQLite.
	require.NoError(t, RunMigrations(db, "does-not-exist"))
	assert.True(t, db.Migrator().HasTable("meal_plans"))
}
