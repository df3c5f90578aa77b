package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/cache"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Job{}, &models.Application{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, subject string) *models.User {
	t.Helper()
	user := &models.User{AuthSubject: subject, Email: subject + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// fakeStore is an in-memory cache.Store without expiry; tests drive hits
// and misses by populating or clearing the map.
type fakeStore struct {
	data map[string]string
	sets int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.sets++
	f.data[key] = value
	return nil
}

// failingStore simulates a cache outage on every call.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("redis: connection refused")
}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("redis: connection refused")
}

// recordingTrigger captures automation hand-offs.
type recordingTrigger struct {
	queued []uint
	err    error
}

func (r *recordingTrigger) ApplicationQueued(_ context.Context, app *models.Application) error {
	r.queued = append(r.queued, app.ID)
	return r.err
}
