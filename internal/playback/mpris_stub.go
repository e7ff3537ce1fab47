//go:build !linux

package playback

import (
	"context"
	"fmt"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

// MprisSource stub for non-Linux platforms
type MprisSource struct {
	logger *zap.Logger
}

// NewMprisSource creates a stub source that returns an error on non-Linux platforms
func NewMprisSource(logger *zap.Logger) *MprisSource {
	return &MprisSource{logger: logger}
}

// Start returns an error indicating MPRIS is not supported on this platform
func (m *MprisSource) Start(_ context.Context) error {
	return fmt.Errorf("MPRIS is only supported on Linux systems")
}

func (m *MprisSource) Close() error { return nil }

func (m *MprisSource) CurrentTrack() domain.Track {
	return domain.Track{ArtistID: domain.NoID, AlbumID: domain.NoID}
}

func (m *MprisSource) State() domain.PlaybackState            { return domain.StateStopped }
func (m *MprisSource) VolumeFraction() float64                { return 0 }
func (m *MprisSource) IsStreaming() bool                      { return false }
func (m *MprisSource) QueuePosition() int                     { return -1 }
func (m *MprisSource) AddListener(domain.PlaybackListener)    {}
func (m *MprisSource) RemoveListener(domain.PlaybackListener) {}

func (m *MprisSource) QueryTrackAt(_ context.Context, _, _ int, done func([]domain.QueueEntry, error)) {
	go done(nil, ErrQueueUnavailable)
}
