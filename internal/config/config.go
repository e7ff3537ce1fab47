package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/20after4/configdir"
	"go.uber.org/zap"
)

const (
	appName = "nowplaying"

	defaultSource       = "mpd"
	defaultMPDAddr      = "localhost:6600"
	defaultArtworkURL   = "http://localhost:8080/artwork"
	defaultOutputDir    = "/tmp/nowplaying"
	defaultLanguage     = "en"
	defaultFetchRetries = 2
	prefsFileName       = "prefs.toml"
)

// AppConfig holds application configuration
type AppConfig struct {
	logger       *zap.Logger
	source       string
	mpdAddr      string
	mpdPassword  string
	artworkURL   string
	outputDir    string
	cacheDir     string
	prefsPath    string
	language     string
	fetchRetries int
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	c := &AppConfig{
		logger:      logger,
		source:      getenv("NOWPLAYING_SOURCE", defaultSource),
		mpdAddr:     getenv("NOWPLAYING_MPD_ADDR", defaultMPDAddr),
		mpdPassword: os.Getenv("NOWPLAYING_MPD_PASSWORD"),
		artworkURL:  getenv("NOWPLAYING_ARTWORK_URL", defaultArtworkURL),
		outputDir:   expandPath(getenv("NOWPLAYING_OUTPUT_DIR", defaultOutputDir)),
		cacheDir:    expandPath(getenv("NOWPLAYING_CACHE_DIR", configdir.LocalCache(appName))),
		prefsPath:   expandPath(getenv("NOWPLAYING_PREFS", filepath.Join(configdir.LocalConfig(appName), prefsFileName))),
		language:    getenv("NOWPLAYING_LANG", defaultLanguage),
	}

	c.fetchRetries = defaultFetchRetries
	if raw := os.Getenv("NOWPLAYING_FETCH_RETRIES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			logger.Warn("Invalid NOWPLAYING_FETCH_RETRIES, using default",
				zap.String("value", raw),
				zap.Int("default", defaultFetchRetries))
		} else {
			c.fetchRetries = n
		}
	}

	logger.Info("Configuration loaded",
		zap.String("source", c.source),
		zap.String("mpdAddr", c.mpdAddr),
		zap.String("artworkURL", c.artworkURL),
		zap.String("outputDir", c.outputDir),
		zap.String("cacheDir", c.cacheDir),
		zap.String("prefsPath", c.prefsPath),
		zap.String("language", c.language),
		zap.Int("fetchRetries", c.fetchRetries))

	return c
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// expandPath expands environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// Source returns the playback backend name, "mpd" or "mpris"
func (c *AppConfig) Source() string {
	return c.source
}

func (c *AppConfig) MPDAddr() string {
	return c.mpdAddr
}

func (c *AppConfig) MPDPassword() string {
	return c.mpdPassword
}

// ArtworkBaseURL returns the endpoint the artwork resolver builds urls from
func (c *AppConfig) ArtworkBaseURL() string {
	return c.artworkURL
}

// OutputDir returns the directory the artwork image is exported to
func (c *AppConfig) OutputDir() string {
	return c.outputDir
}

func (c *AppConfig) CacheDir() string {
	return c.cacheDir
}

func (c *AppConfig) PrefsPath() string {
	return c.prefsPath
}

func (c *AppConfig) Language() string {
	return c.language
}

// FetchRetries returns how many times a display load retries a failed fetch
func (c *AppConfig) FetchRetries() int {
	return c.fetchRetries
}
