package display

import "github.com/genricoloni/nowplaying/internal/domain"

// Snapshot is an immutable read of the playback service used for one render pass
type Snapshot struct {
	Title          string
	Artist         string
	Album          string
	VolumeFraction float64
	Streaming      bool
	Buffering      bool
	Stopped        bool
	ArtistID       int64
	AlbumID        int64
}

// NewSnapshot reads the current state of the playback service
func NewSnapshot(playback domain.PlaybackService) *Snapshot {
	track := playback.CurrentTrack()
	state := playback.State()

	return &Snapshot{
		Title:          track.Title,
		Artist:         track.Artist,
		Album:          track.Album,
		VolumeFraction: playback.VolumeFraction(),
		Streaming:      playback.IsStreaming(),
		Buffering:      state == domain.StateBuffering,
		Stopped:        state == domain.StateStopped,
		ArtistID:       track.ArtistID,
		AlbumID:        track.AlbumID,
	}
}

// ArtworkEligible reports whether the snapshot has enough metadata to look up artwork
func (s *Snapshot) ArtworkEligible() bool {
	return s.Artist != "" && s.Album != ""
}
