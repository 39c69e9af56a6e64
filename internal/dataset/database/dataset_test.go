package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/rango/internal/database"
	"github.com/go-sod/rango/internal/dataset/model"
	"github.com/go-sod/rango/internal/geom"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	sdb, err := database.NewFromEnv(ctx, &database.Config{
		FileName: filepath.Join(t.TempDir(), "rango.db"),
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sdb.Close(ctx)
	})
	return New(sdb)
}

func TestDB_StoreFind(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	d := model.NewDataset("grid", 2, []geom.Point{{0, 0}, {1, 5}, {2, 3}}, time.Now().UTC())
	require.NoError(t, db.Store(ctx, d))

	got, err := db.Find(ctx, "grid")
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, d.Dimensions, got.Dimensions)
	assert.Equal(t, d.Points, got.Points)

	keys, err := db.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"grid"}, keys)
}

func TestDB_Replace(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, db.Store(ctx, model.NewDataset("a", 1, []geom.Point{{1}}, time.Now())))
	second := model.NewDataset("a", 1, []geom.Point{{2}, {3}}, time.Now())
	require.NoError(t, db.Store(ctx, second))

	got, err := db.Find(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, 2, got.Len())
}

func TestDB_NotFound(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	_, err := db.Find(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.Store(ctx, model.NewDataset("present", 1, nil, time.Now())))
	_, err = db.Find(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.Delete(ctx, "present"))
	_, err = db.Find(ctx, "present")
	assert.ErrorIs(t, err, ErrNotFound)

	keys, err := db.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
