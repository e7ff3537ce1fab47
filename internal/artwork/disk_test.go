package artwork

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDiskCache_PutGet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cache, err := OpenDiskCache(zap.NewNop(), dbPath, time.Hour)
	require.NoError(t, err, "Failed to open disk cache")
	defer cache.Close()

	_, err = cache.Get("http://art/a")
	require.ErrorIs(t, err, ErrNotFound, "Empty cache should miss")

	require.NoError(t, cache.Put("http://art/a", []byte("jpeg-bytes")))

	data, err := cache.Get("http://art/a")
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), data)

	require.NoError(t, cache.Put("http://art/a", []byte("newer")))
	data, err = cache.Get("http://art/a")
	require.NoError(t, err)
	require.Equal(t, []byte("newer"), data, "Put should overwrite")
}

func TestDiskCache_Expiry(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cache, err := OpenDiskCache(zap.NewNop(), dbPath, time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	now := time.Now()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Put("old", []byte("1")))
	cache.now = func() time.Time { return now.Add(30 * time.Minute) }
	require.NoError(t, cache.Put("fresh", []byte("2")))

	cache.now = func() time.Time { return now.Add(61 * time.Minute) }

	_, err = cache.Get("old")
	require.ErrorIs(t, err, ErrNotFound, "Expired entry should miss")

	removed, err := cache.Prune()
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	data, err := cache.Get("fresh")
	require.NoError(t, err)
	require.Equal(t, []byte("2"), data)
}

func TestDiskCache_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cache, err := OpenDiskCache(zap.NewNop(), dbPath, time.Hour)
	require.NoError(t, err)
	require.NoError(t, cache.Put("k", []byte("v")))
	require.NoError(t, cache.Close())

	cache, err = OpenDiskCache(zap.NewNop(), dbPath, time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	data, err := cache.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), data)
}

func TestNewDiskCache_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	cache, err := NewDiskCache(zap.NewNop(), testConfig{cacheDir: dir})
	require.NoError(t, err)
	defer cache.Close()

	require.FileExists(t, filepath.Join(dir, diskCacheFile))
}
