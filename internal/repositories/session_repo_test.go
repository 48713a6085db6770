package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pasar/internal/database"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo := repositories.NewGORMSessionRepository(openTestDB(t))

	session := &models.Session{
		SID:    "sid-1",
		Sess:   `{"userId":7}`,
		Expire: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Save(session))

	loaded, err := repo.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, `{"userId":7}`, loaded.Sess)

	// Saving again replaces the row.
	session.Sess = `{"userId":8}`
	require.NoError(t, repo.Save(session))
	loaded, err = repo.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, `{"userId":8}`, loaded.Sess)

	_, err = repo.Get("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSessionRepository_ExpiredIsAMiss(t *testing.T) {
	repo := repositories.NewGORMSessionRepository(openTestDB(t))

	require.NoError(t, repo.Save(&models.Session{
		SID:    "stale",
		Sess:   "{}",
		Expire: time.Now().Add(-time.Minute),
	}))

	_, err := repo.Get("stale")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo := repositories.NewGORMSessionRepository(openTestDB(t))
	now := time.Now()

	require.NoError(t, repo.Save(&models.Session{SID: "old-1", Sess: "{}", Expire: now.Add(-time.Hour)}))
	require.NoError(t, repo.Save(&models.Session{SID: "old-2", Sess: "{}", Expire: now.Add(-time.Minute)}))
	require.NoError(t, repo.Save(&models.Session{SID: "live", Sess: "{}", Expire: now.Add(time.Hour)}))

	purged, err := repo.DeleteExpired(now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	_, err = repo.Get("live")
	assert.NoError(t, err)

	require.NoError(t, repo.Delete("live"))
	_, err = repo.Get("live")
	assert.Error(t, err)
}
