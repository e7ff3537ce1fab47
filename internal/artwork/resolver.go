package artwork

import (
	"fmt"
	"net/url"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

// URLResolver builds artwork URLs on an HTTP artwork service
type URLResolver struct {
	logger *zap.Logger
	base   *url.URL
}

// NewURLResolver creates a resolver for the configured artwork base URL
func NewURLResolver(logger *zap.Logger, cfg domain.Config) (*URLResolver, error) {
	base, err := url.Parse(cfg.ArtworkBaseURL())
	if err != nil {
		return nil, fmt.Errorf("invalid artwork url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported artwork url scheme: %q", base.Scheme)
	}

	return &URLResolver{logger: logger, base: base}, nil
}

// ResolveURL returns the artwork URL for an artist/album pair, or "" when either is empty
func (r *URLResolver) ResolveURL(artist, album string, size domain.SizeTier) string {
	if artist == "" || album == "" {
		return ""
	}

	u := *r.base
	q := u.Query()
	q.Set("artist", artist)
	q.Set("album", album)
	q.Set("size", size.String())
	u.RawQuery = q.Encode()

	return u.String()
}
