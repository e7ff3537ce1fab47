package playback

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// mpdConn is the subset of *mpd.Client used by MPDSource
type mpdConn interface {
	Ping() error
	Status() (mpd.Attrs, error)
	CurrentSong() (mpd.Attrs, error)
	PlaylistInfo(start, end int) ([]mpd.Attrs, error)
	Close() error
}

// mpdState is the cached view of the player, replaced on every refresh
type mpdState struct {
	track     domain.Track
	state     domain.PlaybackState
	volume    float64
	streaming bool
	position  int
	length    int
}

// MPDSource follows an MPD server through the idle protocol
type MPDSource struct {
	logger   *zap.Logger
	addr     string
	password string
	dial     func() (mpdConn, error)

	// connMu serializes commands on the single client connection
	connMu sync.Mutex
	conn   mpdConn

	mu    sync.RWMutex
	state mpdState

	listeners listenerSet

	watcher *mpd.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewMPDSource creates an MPD source for the configured server
func NewMPDSource(logger *zap.Logger, cfg domain.Config) *MPDSource {
	addr, password := cfg.MPDAddr(), cfg.MPDPassword()
	return newMPDSource(logger, addr, password, func() (mpdConn, error) {
		client, err := mpd.DialAuthenticated("tcp", addr, password)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}

func newMPDSource(logger *zap.Logger, addr, password string, dial func() (mpdConn, error)) *MPDSource {
	return &MPDSource{
		logger:   logger,
		addr:     addr,
		password: password,
		dial:     dial,
		state:    mpdState{state: domain.StateStopped, position: -1, track: emptyTrack()},
	}
}

// Start connects to MPD, reads the initial state and starts the idle watcher
func (s *MPDSource) Start(_ context.Context) error {
	if err := s.refresh(); err != nil {
		return fmt.Errorf("failed to connect to MPD: %w", err)
	}

	watcher, err := mpd.NewWatcher("tcp", s.addr, s.password, "player", "mixer", "playlist")
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.watcher = watcher
	s.cancel = cancel

	s.wg.Add(1)
	go s.watch(ctx, watcher.Event, watcher.Error)

	s.logger.Info("MPD source started", zap.String("addr", s.addr))
	return nil
}

// watch refreshes the cached state on every subsystem change
func (s *MPDSource) watch(ctx context.Context, events <-chan string, errs <-chan error) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case subsystem, ok := <-events:
			if !ok {
				return
			}
			s.logger.Debug("MPD subsystem changed", zap.String("subsystem", subsystem))
			if err := s.refresh(); err != nil {
				s.logger.Warn("Failed to refresh MPD state", zap.Error(err))
				continue
			}
			s.listeners.notify()

		case err, ok := <-errs:
			if !ok {
				return
			}
			// the watcher reconnects on its own
			s.logger.Warn("MPD watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and closes the client connection
func (s *MPDSource) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	var err error
	if s.watcher != nil {
		err = multierr.Append(err, s.watcher.Close())
		s.watcher = nil
	}

	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conn != nil {
		err = multierr.Append(err, s.conn.Close())
		s.conn = nil
	}
	return err
}

// withConn runs fn on a live connection, reconnecting when the ping fails
func (s *MPDSource) withConn(fn func(mpdConn) error) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn != nil {
		if err := s.conn.Ping(); err != nil {
			s.logger.Warn("MPD connection lost, reconnecting...", zap.Error(err))
			_ = s.conn.Close()
			s.conn = nil
		}
	}

	if s.conn == nil {
		conn, err := s.dial()
		if err != nil {
			return fmt.Errorf("dial %s: %w", s.addr, err)
		}
		s.conn = conn
		s.logger.Info("Connected to MPD", zap.String("addr", s.addr))
	}

	return fn(s.conn)
}

func (s *MPDSource) refresh() error {
	var status, song mpd.Attrs

	err := s.withConn(func(c mpdConn) error {
		var err error
		if status, err = c.Status(); err != nil {
			return fmt.Errorf("status: %w", err)
		}
		if song, err = c.CurrentSong(); err != nil {
			return fmt.Errorf("current song: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	st := parseMPDState(status, song)

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

func parseMPDState(status, song mpd.Attrs) mpdState {
	st := mpdState{
		track: domain.Track{
			Title:    song["Title"],
			Artist:   song["Artist"],
			Album:    song["Album"],
			ArtistID: domain.NoID,
			AlbumID:  domain.NoID,
		},
		streaming: isStreamURI(song["file"]),
		position:  parseIntOr(status["song"], -1),
		length:    parseIntOr(status["playlistlength"], 0),
	}

	if st.track.Artist == "" {
		st.track.Artist = song["AlbumArtist"]
	}
	// radio streams report the station in Name and the song in Title
	if st.track.Title == "" {
		st.track.Title = song["Name"]
	}

	// -1 means MPD has no mixer
	if volume := parseIntOr(status["volume"], -1); volume >= 0 {
		st.volume = clampFraction(float64(volume) / 100)
	}

	switch status["state"] {
	case "play":
		st.state = domain.StatePlaying
		// a stream without an audio format has not started decoding yet
		if st.streaming && status["audio"] == "" {
			st.state = domain.StateBuffering
		}
	case "pause":
		st.state = domain.StatePaused
	default:
		st.state = domain.StateStopped
	}
	return st
}

func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func emptyTrack() domain.Track {
	return domain.Track{ArtistID: domain.NoID, AlbumID: domain.NoID}
}

func (s *MPDSource) CurrentTrack() domain.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.track
}

func (s *MPDSource) State() domain.PlaybackState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.state
}

func (s *MPDSource) VolumeFraction() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.volume
}

// IsStreaming reports that the current song is an http stream
func (s *MPDSource) IsStreaming() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.streaming
}

// QueuePosition returns the queue index of the current song, or -1
func (s *MPDSource) QueuePosition() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.position
}

func (s *MPDSource) AddListener(l domain.PlaybackListener) {
	s.listeners.add(l)
}

func (s *MPDSource) RemoveListener(l domain.PlaybackListener) {
	s.listeners.remove(l)
}

// QueryTrackAt reads up to limit queue entries starting at offset in a goroutine.
// Offsets past the end of the queue produce an empty result.
func (s *MPDSource) QueryTrackAt(ctx context.Context, offset, limit int, done func([]domain.QueueEntry, error)) {
	go func() {
		if err := ctx.Err(); err != nil {
			done(nil, err)
			return
		}

		s.mu.RLock()
		length := s.state.length
		s.mu.RUnlock()

		if offset < 0 || limit <= 0 || offset >= length {
			done(nil, nil)
			return
		}
		end := min(offset+limit, length)

		var songs []mpd.Attrs
		err := s.withConn(func(c mpdConn) error {
			var err error
			songs, err = c.PlaylistInfo(offset, end)
			return err
		})
		if err != nil {
			done(nil, fmt.Errorf("playlistinfo %d:%d: %w", offset, end, err))
			return
		}

		entries := make([]domain.QueueEntry, 0, len(songs))
		for _, song := range songs {
			artist := song["Artist"]
			if artist == "" {
				artist = song["AlbumArtist"]
			}
			entries = append(entries, domain.QueueEntry{Artist: artist, Album: song["Album"]})
		}
		done(entries, nil)
	}()
}
