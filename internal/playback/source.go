package playback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

// ErrQueueUnavailable is reported by sources that cannot read the play queue
var ErrQueueUnavailable = errors.New("play queue is not available")

// Source is a playback service backed by a running player
type Source interface {
	domain.PlaybackService
	domain.QueueQuery

	// Start connects to the player and begins watching it. It does not block.
	Start(ctx context.Context) error
	Close() error
}

// NewSource creates the source selected by the configuration
func NewSource(logger *zap.Logger, cfg domain.Config) (Source, error) {
	switch strings.ToLower(cfg.Source()) {
	case "mpd":
		return NewMPDSource(logger, cfg), nil
	case "mpris":
		return NewMprisSource(logger), nil
	default:
		return nil, fmt.Errorf("unknown playback source: %q", cfg.Source())
	}
}

// isStreamURI reports whether a track is played from a network stream
func isStreamURI(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

func clampFraction(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
