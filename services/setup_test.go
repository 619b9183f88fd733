package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursehub/database"
	"coursehub/models"
)

// setupTestDB opens a fresh named in-memory store per test. The shared
// cache keeps the schema visible across pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createCourse(t *testing.T, db *gorm.DB, course models.Course) models.Course {
	t.Helper()
	if course.Status == "" {
		course.Status = models.StatusDraft
	}
	if course.Capacity == 0 {
		course.Capacity = 30
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}
