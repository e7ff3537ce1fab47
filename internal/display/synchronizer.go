package display

import (
	"context"
	"image"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params are the collaborators of a Synchronizer
type Params struct {
	fx.In

	Logger     *zap.Logger
	Playback   domain.PlaybackService
	Resolver   domain.ArtworkResolver
	Loader     domain.ImageLoader
	Queue      domain.QueueQuery
	Prefs      domain.Preferences
	Navigator  domain.Navigator
	Renderer   domain.Renderer
	Dispatcher domain.Dispatcher
	Labels     *Labels
}

// state is only read and written on the dispatcher goroutine
type state struct {
	paused bool
	mode   domain.DisplayMode

	// loadedKey is bound to image, or hasKey is false and no image is shown
	loadedKey domain.ArtworkKey
	hasKey    bool
	image     image.Image

	// ticket identifies the only load whose completion may change the display, 0 for none
	ticket     uint64
	lastTicket uint64
}

// Synchronizer decides what the now playing panel shows.
// Every method except PlaybackChanged must be called on the dispatcher goroutine.
type Synchronizer struct {
	logger     *zap.Logger
	ctx        context.Context
	playback   domain.PlaybackService
	resolver   domain.ArtworkResolver
	loader     domain.ImageLoader
	prefs      domain.Preferences
	navigator  domain.Navigator
	renderer   domain.Renderer
	dispatcher domain.Dispatcher
	labels     *Labels
	preloader  *Preloader

	st state
}

// NewSynchronizer creates a paused synchronizer
func NewSynchronizer(p Params) *Synchronizer {
	s := &Synchronizer{
		logger:     p.Logger,
		ctx:        context.Background(),
		playback:   p.Playback,
		resolver:   p.Resolver,
		loader:     p.Loader,
		prefs:      p.Prefs,
		navigator:  p.Navigator,
		renderer:   p.Renderer,
		dispatcher: p.Dispatcher,
		labels:     p.Labels,
		st: state{
			paused: true,
			mode:   domain.ModeStopped,
		},
	}
	s.preloader = NewPreloader(p.Logger, p.Playback, p.Queue, p.Resolver, p.Loader, p.Dispatcher, s.LoadedKey)
	return s
}

// Resume starts listening for playback changes
func (s *Synchronizer) Resume() {
	if !s.st.paused {
		return
	}
	s.playback.AddListener(s)
	s.st.paused = false
	s.logger.Debug("Display resumed")
}

// Pause stops listening for playback changes. In-flight loads are not cancelled.
func (s *Synchronizer) Pause() {
	if s.st.paused {
		return
	}
	s.playback.RemoveListener(s)
	s.st.paused = true
	s.logger.Debug("Display paused")
}

// PlaybackChanged schedules a refresh. It is safe to call from any goroutine.
func (s *Synchronizer) PlaybackChanged() {
	s.dispatcher.Debounce(s.Refresh)
}

// Clear drops the loaded artwork and shows the text-only panel without touching text
func (s *Synchronizer) Clear() {
	if s.st.paused {
		return
	}
	s.supersede()
	s.releaseKey()
	s.setMode(domain.ModeNoArtwork, nil)
	s.render(nil)
}

// Hide hides the panel without changing any state
func (s *Synchronizer) Hide() {
	s.renderer.Hide()
}

// Refresh re-reads the playback service and updates the panel
func (s *Synchronizer) Refresh() {
	if s.st.paused {
		return
	}

	snap := NewSnapshot(s.playback)

	switch {
	case snap.Stopped:
		s.supersede()
		s.st.image = nil
		s.setMode(domain.ModeStopped, nil)

	case !s.prefs.ArtworkEnabled() || !snap.ArtworkEligible():
		s.supersede()
		s.releaseKey()
		s.setMode(domain.ModeNoArtwork, nil)

	default:
		key := domain.ArtworkKey{Artist: snap.Artist, Album: snap.Album, Size: domain.SizeLarge}
		// a bound key with no image and no load in flight was dropped by a stop
		if !s.st.hasKey || s.st.loadedKey != key || (s.st.ticket == 0 && s.st.image == nil) {
			s.loadArtwork(key)
		}
	}

	s.render(snap)
}

// loadArtwork binds key and starts loading its image
func (s *Synchronizer) loadArtwork(key domain.ArtworkKey) {
	url := s.resolver.ResolveURL(key.Artist, key.Album, key.Size)
	if url == "" {
		s.logger.Debug("No artwork url", zap.String("artist", key.Artist), zap.String("album", key.Album))
		s.supersede()
		s.releaseKey()
		s.setMode(domain.ModeNoArtwork, nil)
		return
	}

	s.st.loadedKey = key
	s.st.hasKey = true
	s.st.image = nil
	s.st.lastTicket++
	ticket := s.st.lastTicket
	s.st.ticket = ticket

	s.logger.Debug("Loading artwork",
		zap.String("artist", key.Artist),
		zap.String("album", key.Album),
		zap.String("url", url),
		zap.Uint64("ticket", ticket))

	s.loader.Load(s.ctx, url, func(img image.Image, err error) {
		s.dispatcher.Post(func() {
			s.onArtworkLoaded(ticket, key, img, err)
		})
	})
}

func (s *Synchronizer) onArtworkLoaded(ticket uint64, key domain.ArtworkKey, img image.Image, err error) {
	current := ticket == s.st.ticket && s.st.hasKey && s.st.loadedKey == key

	if s.st.paused {
		// nothing will show this result; let the next refresh load it again
		if current {
			s.supersede()
			s.releaseKey()
		}
		s.logger.Debug("Ignoring artwork load while paused", zap.Uint64("ticket", ticket))
		return
	}

	if !current {
		s.logger.Debug("Ignoring stale artwork load",
			zap.Uint64("ticket", ticket),
			zap.String("artist", key.Artist),
			zap.String("album", key.Album))
		return
	}
	s.st.ticket = 0

	if err != nil {
		s.logger.Warn("Failed to load artwork",
			zap.String("artist", key.Artist),
			zap.String("album", key.Album),
			zap.Error(err))
		s.releaseKey()
		s.setMode(domain.ModeNoArtwork, nil)
		s.render(nil)
		return
	}

	s.setMode(domain.ModeArtwork, img)
	s.render(nil)
	s.preloader.RunOnce()
}

// NavigateToArtist opens the artist of the track playing now, if it has an id
func (s *Synchronizer) NavigateToArtist() {
	track := s.playback.CurrentTrack()
	if track.ArtistID == domain.NoID {
		return
	}
	s.navigator.OpenArtist(track.ArtistID, track.Artist)
}

// NavigateToAlbum opens the album of the track playing now, if it has an id
func (s *Synchronizer) NavigateToAlbum() {
	track := s.playback.CurrentTrack()
	if track.AlbumID == domain.NoID {
		return
	}
	s.navigator.OpenAlbum(track.AlbumID, track.Album)
}

// Activate handles a click on a region of the composite label
func (s *Synchronizer) Activate(target domain.RegionTarget) {
	switch target {
	case domain.TargetAlbum:
		s.NavigateToAlbum()
	case domain.TargetArtist:
		s.NavigateToArtist()
	}
}

// Mode returns the last display mode
func (s *Synchronizer) Mode() domain.DisplayMode {
	return s.st.mode
}

// LoadedKey returns the artwork key bound to the panel
func (s *Synchronizer) LoadedKey() (domain.ArtworkKey, bool) {
	return s.st.loadedKey, s.st.hasKey
}

// Paused reports whether the synchronizer ignores refreshes
func (s *Synchronizer) Paused() bool {
	return s.st.paused
}

func (s *Synchronizer) supersede() {
	s.st.ticket = 0
}

func (s *Synchronizer) releaseKey() {
	s.st.loadedKey = domain.ArtworkKey{}
	s.st.hasKey = false
	s.st.image = nil
}

func (s *Synchronizer) setMode(mode domain.DisplayMode, img image.Image) {
	if mode != s.st.mode {
		s.logger.Debug("Display mode changed",
			zap.Stringer("from", s.st.mode),
			zap.Stringer("to", mode))
	}
	s.st.mode = mode
	if mode == domain.ModeArtwork {
		s.st.image = img
	}
}

func (s *Synchronizer) render(snap *Snapshot) {
	s.renderer.Render(Render(snap, s.st.mode, s.st.image, s.labels))
}
