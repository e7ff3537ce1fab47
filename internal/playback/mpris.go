//go:build linux

package playback

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/genricoloni/nowplaying/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	mprisPrefix     = "org.mpris.MediaPlayer2."
	mprisPath       = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// MprisSource follows one MPRIS player on the session bus.
// It prefers a playing player and switches to any player that starts playing.
type MprisSource struct {
	logger *zap.Logger
	dial   func() (DBusClient, error)

	mu          sync.RWMutex
	conn        DBusClient
	playerNames map[string]string // Maps unique bus names (:1.45) to well-known names (org.mpris.MediaPlayer2.spotify)
	active      string            // unique name of the followed player, "" for none

	track     domain.Track
	status    domain.PlaybackState
	volume    float64
	streaming bool

	listeners listenerSet
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewMprisSource creates a new MPRIS source instance
func NewMprisSource(logger *zap.Logger) *MprisSource {
	return newMprisSource(logger, func() (DBusClient, error) {
		return NewStdDBusClient()
	})
}

func newMprisSource(logger *zap.Logger, dial func() (DBusClient, error)) *MprisSource {
	return &MprisSource{
		logger:      logger,
		dial:        dial,
		playerNames: make(map[string]string),
		track:       emptyTrack(),
		status:      domain.StateStopped,
		volume:      1,
	}
}

// Start connects to the session bus, picks a player and begins listening for signals
func (m *MprisSource) Start(_ context.Context) error {
	conn, err := m.dial()
	if err != nil {
		m.logger.Error("Failed to connect to session bus", zap.Error(err))
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()

	if err := m.detectExistingPlayers(); err != nil {
		m.logger.Warn("Failed to detect existing players", zap.Error(err))
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(mprisPath),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		return fmt.Errorf("failed to add match signal: %w", err)
	}

	// Add match rule for NameOwnerChanged to track new/removed players dynamically
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus"),
		dbus.WithMatchMember("NameOwnerChanged"),
	); err != nil {
		m.logger.Warn("Failed to add NameOwnerChanged match signal", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.wg.Add(1)
	go m.monitorSignals(ctx)

	m.logger.Info("MPRIS source started")
	return nil
}

// Close stops signal processing and closes the bus connection
func (m *MprisSource) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

// detectExistingPlayers queries D-Bus for running MPRIS players and follows one of them
func (m *MprisSource) detectExistingPlayers() error {
	names, err := m.conn.ListNames()
	if err != nil {
		return fmt.Errorf("failed to list bus names: %w", err)
	}

	var first, playing string
	for _, name := range names {
		if !strings.HasPrefix(name, mprisPrefix) {
			continue
		}

		uniqueName, err := m.conn.GetNameOwner(name)
		if err != nil {
			m.logger.Debug("Failed to resolve player owner", zap.String("player", name), zap.Error(err))
			continue
		}

		m.mu.Lock()
		m.playerNames[uniqueName] = name
		m.mu.Unlock()
		m.logger.Info("Detected MPRIS player", zap.String("name", name), zap.String("unique", uniqueName))

		if first == "" {
			first = uniqueName
		}
		if playing == "" {
			if status, err := m.getStatus(uniqueName); err == nil && status == domain.StatePlaying {
				playing = uniqueName
			}
		}
	}

	chosen := playing
	if chosen == "" {
		chosen = first
	}
	if chosen == "" {
		m.logger.Info("No MPRIS player running")
		return nil
	}

	return m.follow(chosen)
}

// follow makes player the followed player and reads its full state
func (m *MprisSource) follow(player string) error {
	state, err := m.fetchPlayerState(player)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.active = player
	m.track = state.track
	m.status = state.state
	m.streaming = state.streaming
	m.volume = state.volume
	m.mu.Unlock()

	m.logger.Info("Following MPRIS player",
		zap.String("player", m.getPlayerName(player)),
		zap.String("title", state.track.Title))

	m.listeners.notify()
	return nil
}

type mprisState struct {
	track     domain.Track
	state     domain.PlaybackState
	streaming bool
	volume    float64
}

// fetchPlayerState retrieves metadata, status and volume from a specific player
func (m *MprisSource) fetchPlayerState(player string) (mprisState, error) {
	st := mprisState{track: emptyTrack(), volume: 1}

	variant, err := m.conn.GetProperty(player, mprisPath, playerInterface+".Metadata")
	if err != nil {
		return st, fmt.Errorf("failed to get metadata: %w", err)
	}

	// Some players may return unexpected types if not playing anything
	if metadata, ok := variant.Value().(map[string]dbus.Variant); ok {
		st.track, st.streaming = m.parseMetadata(metadata)
	} else {
		m.logger.Debug("Metadata variant is not a map", zap.String("player", player))
	}

	status, err := m.getStatus(player)
	if err != nil {
		return st, err
	}
	st.state = status

	if v, err := m.conn.GetProperty(player, mprisPath, playerInterface+".Volume"); err == nil {
		if volume, ok := v.Value().(float64); ok {
			st.volume = clampFraction(volume)
		}
	}
	return st, nil
}

func (m *MprisSource) getStatus(player string) (domain.PlaybackState, error) {
	variant, err := m.conn.GetProperty(player, mprisPath, playerInterface+".PlaybackStatus")
	if err != nil {
		return domain.StateStopped, fmt.Errorf("failed to get playback status: %w", err)
	}

	status, ok := variant.Value().(string)
	if !ok {
		return domain.StateStopped, fmt.Errorf("invalid playback status format")
	}
	return parseStatus(status), nil
}

// monitorSignals listens for D-Bus signals and processes them
func (m *MprisSource) monitorSignals(ctx context.Context) {
	defer m.wg.Done()

	signals := make(chan *dbus.Signal, 10)
	m.conn.Signal(signals)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Signal monitoring goroutine stopped")
			return
		case sig := <-signals:
			if sig == nil {
				continue
			}
			if sig.Name == "org.freedesktop.DBus.NameOwnerChanged" {
				m.handleNameOwnerChanged(sig)
			} else {
				m.handleSignal(sig)
			}
		}
	}
}

// handleNameOwnerChanged processes NameOwnerChanged signals to track player lifecycle
func (m *MprisSource) handleNameOwnerChanged(sig *dbus.Signal) {
	if len(sig.Body) < 3 {
		return
	}

	name, ok := sig.Body[0].(string)
	if !ok || !strings.HasPrefix(name, mprisPrefix) {
		return // Not an MPRIS player
	}

	oldOwner, _ := sig.Body[1].(string)
	newOwner, _ := sig.Body[2].(string)

	m.mu.Lock()
	if oldOwner != "" {
		delete(m.playerNames, oldOwner)
	}
	if newOwner != "" {
		m.playerNames[newOwner] = name
	}
	lostActive := oldOwner != "" && oldOwner == m.active
	if lostActive {
		m.active = ""
		m.track = emptyTrack()
		m.status = domain.StateStopped
		m.streaming = false
	}
	m.mu.Unlock()

	switch {
	case newOwner != "" && oldOwner == "":
		m.logger.Info("New MPRIS player detected", zap.String("player", name), zap.String("unique", newOwner))
	case newOwner == "" && oldOwner != "":
		m.logger.Info("MPRIS player removed", zap.String("player", name), zap.String("unique", oldOwner))
	}

	if lostActive {
		m.listeners.notify()
	}
}

// handleSignal processes a PropertiesChanged signal of a player
func (m *MprisSource) handleSignal(sig *dbus.Signal) {
	// PropertiesChanged signal has 3 arguments:
	// 1. Interface name (string)
	// 2. Changed properties (map[string]Variant)
	// 3. Invalidated properties ([]string)
	if sig.Name != "org.freedesktop.DBus.Properties.PropertiesChanged" {
		return
	}
	if len(sig.Body) < 2 {
		return
	}

	interfaceName, ok := sig.Body[0].(string)
	if !ok || interfaceName != playerInterface {
		return
	}

	changedProps, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return
	}

	metadataVariant, hasMetadata := changedProps["Metadata"]
	statusVariant, hasStatus := changedProps["PlaybackStatus"]
	volumeVariant, hasVolume := changedProps["Volume"]

	if !hasMetadata && !hasStatus && !hasVolume {
		return
	}

	var metadata map[string]dbus.Variant
	if hasMetadata {
		if metadata, ok = metadataVariant.Value().(map[string]dbus.Variant); !ok {
			m.logger.Warn("Invalid metadata format in signal, ignoring")
			return
		}
	}

	var status domain.PlaybackState
	if hasStatus {
		s, ok := statusVariant.Value().(string)
		if !ok {
			m.logger.Warn("Invalid playback status format in signal, ignoring")
			return
		}
		status = parseStatus(s)
	}

	var volume float64
	if hasVolume {
		if volume, ok = volumeVariant.Value().(float64); !ok {
			m.logger.Warn("Invalid volume format in signal, ignoring")
			return
		}
	}

	m.mu.RLock()
	active := m.active
	m.mu.RUnlock()

	if sig.Sender != active {
		// another player started playing: follow it
		if active == "" || (hasStatus && status == domain.StatePlaying) {
			if err := m.follow(sig.Sender); err != nil {
				m.logger.Warn("Failed to follow player", zap.String("player", m.getPlayerName(sig.Sender)), zap.Error(err))
			}
		}
		return
	}

	m.mu.Lock()
	if hasMetadata {
		m.track, m.streaming = m.parseMetadata(metadata)
	}
	if hasStatus {
		m.status = status
	}
	if hasVolume {
		m.volume = clampFraction(volume)
	}
	track, st := m.track, m.status
	m.mu.Unlock()

	m.logger.Debug("Media change detected",
		zap.String("player", m.getPlayerName(sig.Sender)),
		zap.String("title", track.Title),
		zap.String("artist", track.Artist),
		zap.String("status", string(st)))

	m.listeners.notify()
}

// parseMetadata converts MPRIS metadata to a track and reports whether it is a network stream
func (m *MprisSource) parseMetadata(metadata map[string]dbus.Variant) (domain.Track, bool) {
	track := emptyTrack()

	if titleVar, ok := metadata["xesam:title"]; ok {
		if title, ok := titleVar.Value().(string); ok {
			track.Title = title
		}
	}

	// Extract artist (can be an array)
	if artistVar, ok := metadata["xesam:artist"]; ok {
		switch artists := artistVar.Value().(type) {
		case []string:
			if len(artists) > 0 {
				track.Artist = artists[0]
			}
		case string:
			track.Artist = artists
		default:
			// Some non-compliant players may use unexpected types
			m.logger.Debug("Unexpected artist type in metadata",
				zap.String("type", fmt.Sprintf("%T", artistVar.Value())))
		}
	}

	if albumVar, ok := metadata["xesam:album"]; ok {
		if album, ok := albumVar.Value().(string); ok {
			track.Album = album
		}
	}

	streaming := false
	if urlVar, ok := metadata["xesam:url"]; ok {
		if u, ok := urlVar.Value().(string); ok {
			streaming = isStreamURI(u)
		}
	}

	return track, streaming
}

func parseStatus(status string) domain.PlaybackState {
	switch status {
	case "Playing":
		return domain.StatePlaying
	case "Paused":
		return domain.StatePaused
	default:
		return domain.StateStopped
	}
}

// getPlayerName returns the well-known player name for a unique bus name
// Falls back to the unique name if no mapping exists
func (m *MprisSource) getPlayerName(uniqueName string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if wellKnown, ok := m.playerNames[uniqueName]; ok {
		return wellKnown
	}
	return uniqueName
}

func (m *MprisSource) CurrentTrack() domain.Track {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.track
}

func (m *MprisSource) State() domain.PlaybackState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *MprisSource) VolumeFraction() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// IsStreaming reports that the player plays an http url
func (m *MprisSource) IsStreaming() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.streaming
}

// QueuePosition is always -1: MPRIS exposes no queue index
func (m *MprisSource) QueuePosition() int {
	return -1
}

func (m *MprisSource) AddListener(l domain.PlaybackListener) {
	m.listeners.add(l)
}

func (m *MprisSource) RemoveListener(l domain.PlaybackListener) {
	m.listeners.remove(l)
}

// QueryTrackAt always fails with ErrQueueUnavailable
func (m *MprisSource) QueryTrackAt(_ context.Context, _, _ int, done func([]domain.QueueEntry, error)) {
	go done(nil, ErrQueueUnavailable)
}
