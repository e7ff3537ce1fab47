package display

import (
	"context"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

// Preloader warms the artwork cache for the next track in the queue.
// It never changes what the panel shows and never retries.
type Preloader struct {
	logger     *zap.Logger
	ctx        context.Context
	playback   domain.PlaybackService
	queue      domain.QueueQuery
	resolver   domain.ArtworkResolver
	loader     domain.ImageLoader
	dispatcher domain.Dispatcher
	current    func() (domain.ArtworkKey, bool)
}

// NewPreloader creates a preloader. current reports the artwork key bound to the panel
// and is called on the dispatcher goroutine.
func NewPreloader(
	logger *zap.Logger,
	playback domain.PlaybackService,
	queue domain.QueueQuery,
	resolver domain.ArtworkResolver,
	loader domain.ImageLoader,
	dispatcher domain.Dispatcher,
	current func() (domain.ArtworkKey, bool),
) *Preloader {
	return &Preloader{
		logger:     logger,
		ctx:        context.Background(),
		playback:   playback,
		queue:      queue,
		resolver:   resolver,
		loader:     loader,
		dispatcher: dispatcher,
		current:    current,
	}
}

// RunOnce queries the track after the current queue position and warms its artwork
func (p *Preloader) RunOnce() {
	offset := p.playback.QueuePosition() + 1

	p.queue.QueryTrackAt(p.ctx, offset, 1, func(entries []domain.QueueEntry, err error) {
		p.dispatcher.Post(func() {
			p.onQueueResult(offset, entries, err)
		})
	})
}

func (p *Preloader) onQueueResult(offset int, entries []domain.QueueEntry, err error) {
	if err != nil {
		p.logger.Debug("Preload queue query failed", zap.Int("offset", offset), zap.Error(err))
		return
	}
	if len(entries) == 0 {
		p.logger.Debug("Nothing queued to preload", zap.Int("offset", offset))
		return
	}

	next := entries[0]
	if next.Artist == "" || next.Album == "" {
		return
	}

	key := domain.ArtworkKey{Artist: next.Artist, Album: next.Album, Size: domain.SizeLarge}
	if loaded, ok := p.current(); ok && loaded == key {
		return
	}

	url := p.resolver.ResolveURL(key.Artist, key.Album, key.Size)
	if url == "" {
		return
	}

	p.logger.Debug("Preloading artwork",
		zap.String("artist", key.Artist),
		zap.String("album", key.Album),
		zap.String("url", url))

	p.loader.Warm(p.ctx, url, key.Size, func(err error) {
		if err != nil {
			p.logger.Debug("Preload failed", zap.String("url", url), zap.Error(err))
		}
	})
}
