package domain

import (
	"context"
	"image"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/genricoloni/nowplaying/internal/domain PlaybackService,ArtworkResolver,ImageLoader,QueueQuery,Navigator

// PlaybackService exposes the live state of the player being displayed
type PlaybackService interface {
	CurrentTrack() Track
	State() PlaybackState
	// VolumeFraction is in the range [0, 1]
	VolumeFraction() float64
	// IsStreaming reports that audio is rendered elsewhere and volume is not ours to show
	IsStreaming() bool
	QueuePosition() int

	// AddListener registers l for change notifications
	AddListener(l PlaybackListener)
	// RemoveListener unregisters l; unknown listeners are ignored
	RemoveListener(l PlaybackListener)
}

// PlaybackListener is notified when the playback service state changes.
// Notifications may arrive on any goroutine.
type PlaybackListener interface {
	PlaybackChanged()
}

// ArtworkResolver maps an artist/album pair to an artwork URL
type ArtworkResolver interface {
	// ResolveURL returns an empty string when no artwork can exist for the pair
	ResolveURL(artist, album string, size SizeTier) string
}

// ImageLoader loads and caches decoded artwork.
// Callbacks are invoked exactly once, on any goroutine.
type ImageLoader interface {
	// Load fetches the image at url for display
	Load(ctx context.Context, url string, done func(image.Image, error))

	// Warm populates the cache for url without returning the image
	Warm(ctx context.Context, url string, size SizeTier, done func(error))
}

// QueueQuery reads entries of the play queue from the remote player
type QueueQuery interface {
	QueryTrackAt(ctx context.Context, offset, limit int, done func([]QueueEntry, error))
}

// Preferences exposes user settings the display depends on
type Preferences interface {
	ArtworkEnabled() bool
}

// Navigator opens artist and album views in the host
type Navigator interface {
	OpenArtist(id int64, name string)
	OpenAlbum(id int64, name string)
}

// Renderer applies render instructions to the host UI
type Renderer interface {
	Render(instr RenderInstruction)
	Hide()
}

// Dispatcher runs functions on the single goroutine that owns display state
type Dispatcher interface {
	// Post runs fn after every previously posted function
	Post(fn func())

	// Debounce runs fn once the debounce window passes without another Debounce call.
	// Only the latest fn is run.
	Debounce(fn func())
}

// Config defines the interface for application configuration
type Config interface {
	Source() string
	MPDAddr() string
	MPDPassword() string
	ArtworkBaseURL() string
	OutputDir() string
	CacheDir() string
	PrefsPath() string
	Language() string
	FetchRetries() int
}
