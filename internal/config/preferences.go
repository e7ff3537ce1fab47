package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/20after4/configdir"
	"github.com/genricoloni/nowplaying/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Preferences holds user settings persisted as TOML
type Preferences struct {
	ShowArtwork bool `toml:"ArtworkEnabled"`

	path    string
	writeMu sync.Mutex
}

// DefaultPreferences returns preferences with every setting at its default
func DefaultPreferences() *Preferences {
	return &Preferences{ShowArtwork: true}
}

// LoadPreferences reads the preferences file at path.
// A missing file is created with defaults; an unreadable one falls back to defaults.
func LoadPreferences(logger *zap.Logger, path string) (*Preferences, error) {
	p, err := ReadPreferencesFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		p = DefaultPreferences()
		p.path = path
		if err := p.Write(); err != nil {
			return nil, err
		}
		logger.Info("Created default preferences", zap.String("path", path))
	default:
		logger.Warn("Failed to read preferences, using defaults", zap.String("path", path), zap.Error(err))
		p = DefaultPreferences()
	}

	p.path = path
	return p, nil
}

// NewPreferences loads the preferences file named by the configuration
func NewPreferences(logger *zap.Logger, cfg domain.Config) (*Preferences, error) {
	return LoadPreferences(logger, cfg.PrefsPath())
}

func ReadPreferencesFile(path string) (*Preferences, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := DefaultPreferences()
	if err := toml.NewDecoder(f).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Write saves the preferences to their file
func (p *Preferences) Write() error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if err := configdir.MakePath(filepath.Dir(p.path)); err != nil {
		return err
	}
	b, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, b, 0644)
}

func (p *Preferences) ArtworkEnabled() bool {
	return p.ShowArtwork
}
