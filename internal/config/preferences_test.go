package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadPreferences_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	p, err := LoadPreferences(zap.NewNop(), path)
	require.NoError(t, err)
	require.True(t, p.ArtworkEnabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "ArtworkEnabled = true")
}

func TestLoadPreferences_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("ArtworkEnabled = false\n"), 0644))

	p, err := LoadPreferences(zap.NewNop(), path)
	require.NoError(t, err)
	require.False(t, p.ArtworkEnabled())
}

func TestLoadPreferences_MissingKeyKeepsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("# empty\n"), 0644))

	p, err := LoadPreferences(zap.NewNop(), path)
	require.NoError(t, err)
	require.True(t, p.ArtworkEnabled())
}

func TestLoadPreferences_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("ArtworkEnabled = = nope"), 0644))

	p, err := LoadPreferences(zap.NewNop(), path)
	require.NoError(t, err)
	require.True(t, p.ArtworkEnabled())

	// the broken file is left alone
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ArtworkEnabled = = nope", string(data))
}

func TestPreferences_WriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	p, err := LoadPreferences(zap.NewNop(), path)
	require.NoError(t, err)

	p.ShowArtwork = false
	require.NoError(t, p.Write())

	reread, err := ReadPreferencesFile(path)
	require.NoError(t, err)
	require.False(t, reread.ArtworkEnabled())
}
