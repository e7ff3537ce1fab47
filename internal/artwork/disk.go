package artwork

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"time"

	"github.com/20after4/configdir"
	"github.com/genricoloni/nowplaying/internal/domain"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const (
	diskCacheFile   = "artwork.db"
	defaultDiskTTL  = 24 * time.Hour
	timestampHeader = 8
)

var artworkBucket = []byte("artwork")

// BlobStore keeps raw artwork bytes between runs
type BlobStore interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// DiskCache stores fetched artwork bytes in a bbolt database.
// Every value is prefixed with the unix time it was written at.
type DiskCache struct {
	logger *zap.Logger
	db     *bbolt.DB
	ttl    time.Duration
	now    func() time.Time
}

// NewDiskCache opens the artwork database in the configured cache directory
func NewDiskCache(logger *zap.Logger, cfg domain.Config) (*DiskCache, error) {
	dir := cfg.CacheDir()
	if err := configdir.MakePath(dir); err != nil {
		return nil, fmt.Errorf("could not create cache directory: %w", err)
	}
	return OpenDiskCache(logger, filepath.Join(dir, diskCacheFile), defaultDiskTTL)
}

// OpenDiskCache opens or creates the database at path
func OpenDiskCache(logger *zap.Logger, path string, ttl time.Duration) (*DiskCache, error) {
	options := &bbolt.Options{Timeout: 1 * time.Second}
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("could not open artwork database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(artworkBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create artwork bucket: %w", err)
	}

	logger.Info("Artwork disk cache opened", zap.String("path", path), zap.Duration("ttl", ttl))
	return &DiskCache{logger: logger, db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the bytes stored for key. Missing and expired entries return ErrNotFound.
func (c *DiskCache) Get(key string) ([]byte, error) {
	var data []byte

	err := c.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(artworkBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		if c.expired(v) {
			return ErrNotFound
		}
		// v is only valid inside the transaction
		data = append([]byte(nil), v[timestampHeader:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put stores data for key
func (c *DiskCache) Put(key string, data []byte) error {
	value := make([]byte, timestampHeader+len(data))
	binary.BigEndian.PutUint64(value, uint64(c.now().Unix()))
	copy(value[timestampHeader:], data)

	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(artworkBucket).Put([]byte(key), value)
	})
}

// Prune deletes every expired entry and returns how many were removed
func (c *DiskCache) Prune() (int, error) {
	removed := 0

	err := c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(artworkBucket)

		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			if c.expired(v) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("could not prune artwork cache: %w", err)
	}

	if removed > 0 {
		c.logger.Debug("Pruned artwork disk cache", zap.Int("removed", removed))
	}
	return removed, nil
}

func (c *DiskCache) expired(v []byte) bool {
	if len(v) < timestampHeader {
		return true
	}
	written := time.Unix(int64(binary.BigEndian.Uint64(v[:timestampHeader])), 0)
	return c.now().Sub(written) > c.ttl
}

func (c *DiskCache) Close() error {
	return c.db.Close()
}
