package domain

import "image"

// NoID marks an absent artist or album identifier
const NoID int64 = -1

// PlaybackState represents the current state of the playback service
type PlaybackState string

const (
	// StatePlaying indicates the media is currently playing
	StatePlaying PlaybackState = "Playing"
	// StatePaused indicates the media is paused
	StatePaused PlaybackState = "Paused"
	// StateBuffering indicates the player is waiting for data
	StateBuffering PlaybackState = "Buffering"
	// StateStopped indicates the media is stopped
	StateStopped PlaybackState = "Stopped"
)

// Track contains information about the currently playing media
type Track struct {
	Title  string
	Artist string
	Album  string
	// ArtistID and AlbumID are NoID when the source does not know them
	ArtistID int64
	AlbumID  int64
}

// QueueEntry is the subset of a queued track needed to warm its artwork
type QueueEntry struct {
	Artist string
	Album  string
}

// SizeTier selects the artwork resolution requested from the resolver
type SizeTier int

const (
	SizeSmall SizeTier = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

// Pixels returns the bounding box edge used when scaling artwork for the tier
func (s SizeTier) Pixels() int {
	switch s {
	case SizeSmall:
		return 64
	case SizeMedium:
		return 174
	case SizeExtraLarge:
		return 1200
	default:
		return 600
	}
}

func (s SizeTier) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeExtraLarge:
		return "extralarge"
	default:
		return "unknown"
	}
}

// ArtworkKey identifies one piece of artwork in the resolver and the image cache
type ArtworkKey struct {
	Artist string
	Album  string
	Size   SizeTier
}

// DisplayMode selects which metadata panel is visible
type DisplayMode int

const (
	ModeStopped DisplayMode = iota
	ModeNoArtwork
	ModeArtwork
)

func (m DisplayMode) String() string {
	switch m {
	case ModeStopped:
		return "Stopped"
	case ModeNoArtwork:
		return "NoArtwork"
	case ModeArtwork:
		return "Artwork"
	default:
		return "Unknown"
	}
}

// RegionTarget names what a clickable region of the composite label navigates to
type RegionTarget int

const (
	TargetAlbum RegionTarget = iota
	TargetArtist
)

// Region is a half-open [Start, End) range of characters in a label
type Region struct {
	Target RegionTarget
	Start  int
	End    int
}

// CompositeLabel is the "<album> - <artist>" label with its clickable regions
type CompositeLabel struct {
	Text    string
	Regions []Region
}

// Hit returns the region containing the character at offset
func (c CompositeLabel) Hit(offset int) (Region, bool) {
	for _, r := range c.Regions {
		if offset >= r.Start && offset < r.End {
			return r, true
		}
	}
	return Region{}, false
}

// TextContent holds every text field of the panel for one render pass
type TextContent struct {
	Title         string
	Artist        string
	Album         string
	Volume        string
	VolumeVisible bool
	Buffering     bool
	Composite     CompositeLabel
}

// RenderInstruction is everything a host needs to draw the panel.
// A nil Text leaves the previously rendered text untouched.
type RenderInstruction struct {
	Visible             bool
	Mode                DisplayMode
	ArtworkPanelVisible bool
	TextPanelVisible    bool
	Image               image.Image
	Text                *TextContent
}
