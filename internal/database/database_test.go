package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := New(Config{
		Driver: DriverSQLite,
		DSN:    "file::memory:?_foreign_keys=on",
	})
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(Config{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, zap.NewNop()))

	assert.True(t, db.Migrator().HasTable("posts"))
	assert.True(t, db.Migrator().HasTable("comments"))

	// running twice is a no-op
	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, zap.NewNop()))
}

func TestMigrator_StatusAndDown(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	m, err := NewMigrator(db, DriverSQLite, zap.NewNop())
	require.NoError(t, err)

	states, err := m.Status(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	for _, s := range states {
		assert.False(t, s.Applied, "migration %d should be pending", s.Version)
	}

	require.NoError(t, m.Up(ctx))

	states, err = m.Status(ctx)
	require.NoError(t, err)
	for _, s := range states {
		assert.True(t, s.Applied, "migration %d should be applied", s.Version)
	}

	require.NoError(t, m.Down(ctx))
	assert.False(t, db.Migrator().HasTable("comments"))
	assert.True(t, db.Migrator().HasTable("posts"))
}

func TestNewMigrator_UnsupportedDriver(t *testing.T) {
	db := openTestDB(t)
	_, err := NewMigrator(db, "mysql", zap.NewNop())
	assert.Error(t, err)
}

func TestSchema_CascadeDelete(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, zap.NewNop()))

	require.NoError(t, db.Exec(`INSERT INTO posts (title, content) VALUES ('t', 'c')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO comments (content, post_id) VALUES ('a', 1), ('b', 1)`).Error)

	require.NoError(t, db.Exec(`DELETE FROM posts WHERE id = 1`).Error)

	var count int64
	require.NoError(t, db.Table("comments").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSchema_CommentRequiresExistingPost(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, zap.NewNop()))

	err := db.Exec(`INSERT INTO comments (content, post_id) VALUES ('orphan', 42)`).Error
	assert.Error(t, err, "foreign key must reject comments on missing posts")
}

func TestSchema_IDsNotReused(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, zap.NewNop()))

	require.NoError(t, db.Exec(`INSERT INTO posts (title, content) VALUES ('a', 'a'), ('b', 'b')`).Error)
	require.NoError(t, db.Exec(`DELETE FROM posts WHERE id = 2`).Error)
	require.NoError(t, db.Exec(`INSERT INTO posts (title, content) VALUES ('c', 'c')`).Error)

	var maxID int64
	require.NoError(t, db.Raw(`SELECT MAX(id) FROM posts`).Scan(&maxID).Error)
	assert.Equal(t, int64(3), maxID)
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []string
	stats   int
}

func (r *fakeRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, operation+":"+table)
}

func (r *fakeRecorder) UpdateDBStats(stats interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats++
}

func (r *fakeRecorder) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...), r.stats
}

type callbackPost struct {
	ID      uint
	Title   string
	Content string
}

func (callbackPost) TableName() string { return "posts" }

func TestRegisterMetricsCallbacks(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, DriverSQLite, zap.NewNop()))

	rec := &fakeRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, rec))

	p := &callbackPost{Title: "t", Content: "c"}
	require.NoError(t, db.Create(p).Error)

	var found []callbackPost
	require.NoError(t, db.Find(&found).Error)

	queries, _ := rec.snapshot()
	assert.Contains(t, queries, "insert:posts")
	assert.Contains(t, queries, "select:posts")
}

func TestStartDBStatsCollector(t *testing.T) {
	db := openTestDB(t)
	rec := &fakeRecorder{}

	done := StartDBStatsCollector(db, rec, 10*time.Millisecond)
	defer close(done)

	assert.Eventually(t, func() bool {
		_, stats := rec.snapshot()
		return stats > 0
	}, time.Second, 10*time.Millisecond)
}
