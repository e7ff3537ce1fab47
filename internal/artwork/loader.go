package artwork

import (
	"context"
	"errors"
	"image"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

var (
	// ErrNotFound reports a cache miss or missing artwork
	ErrNotFound = errors.New("artwork not found")
	// ErrNotImage reports a response that is not an image
	ErrNotImage = errors.New("url is not an image")
)

// Loader loads artwork through a memory tier, a disk tier and the network.
// It is shared by display loads and preloads.
type Loader struct {
	logger  *zap.Logger
	memory  *ImageCache
	disk    BlobStore
	fetcher Fetcher
	scaler  *Scaler

	// displaySize is the tier display loads are decoded at
	displaySize domain.SizeTier
}

// NewLoader creates a loader decoding display artwork at the large tier
func NewLoader(logger *zap.Logger, memory *ImageCache, disk BlobStore, fetcher Fetcher, scaler *Scaler) *Loader {
	return &Loader{
		logger:      logger,
		memory:      memory,
		disk:        disk,
		fetcher:     fetcher,
		scaler:      scaler,
		displaySize: domain.SizeLarge,
	}
}

// Load fetches the image at url in a goroutine and hands it to done
func (l *Loader) Load(ctx context.Context, url string, done func(image.Image, error)) {
	go func() {
		done(l.load(ctx, url, l.displaySize, true))
	}()
}

// Warm fills the caches for url without retries
func (l *Loader) Warm(ctx context.Context, url string, size domain.SizeTier, done func(error)) {
	go func() {
		_, err := l.load(ctx, url, size, false)
		done(err)
	}()
}

func (l *Loader) load(ctx context.Context, url string, size domain.SizeTier, retry bool) (image.Image, error) {
	key := memoryKey(url, size)
	if img, err := l.memory.Get(key); err == nil {
		l.logger.Debug("Artwork memory hit", zap.String("url", url))
		return img, nil
	}

	data, err := l.disk.Get(url)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			l.logger.Warn("Failed to read artwork disk cache", zap.String("url", url), zap.Error(err))
		}

		data, err = l.fetcher.Fetch(ctx, url, retry)
		if err != nil {
			return nil, err
		}

		if err := l.disk.Put(url, data); err != nil {
			l.logger.Warn("Failed to write artwork disk cache", zap.String("url", url), zap.Error(err))
		}
	} else {
		l.logger.Debug("Artwork disk hit", zap.String("url", url))
	}

	img, err := l.scaler.Decode(data, size)
	if err != nil {
		return nil, err
	}

	l.memory.Set(key, img)
	return img, nil
}

func memoryKey(url string, size domain.SizeTier) string {
	return size.String() + "|" + url
}
