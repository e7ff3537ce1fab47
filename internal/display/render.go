package display

import (
	"image"
	"math"
	"unicode/utf8"

	"github.com/genricoloni/nowplaying/internal/domain"
)

const compositeSeparator = " - "

// Render computes what the host must draw for a snapshot in a given mode.
// A nil snapshot produces an instruction that leaves text untouched.
func Render(snap *Snapshot, mode domain.DisplayMode, img image.Image, labels *Labels) domain.RenderInstruction {
	instr := domain.RenderInstruction{
		Visible: true,
		Mode:    mode,
	}

	switch mode {
	case domain.ModeArtwork:
		instr.ArtworkPanelVisible = true
		instr.Image = img
	case domain.ModeNoArtwork:
		instr.TextPanelVisible = true
	}

	if snap != nil {
		instr.Text = renderText(snap, labels)
	}
	return instr
}

func renderText(snap *Snapshot, labels *Labels) *domain.TextContent {
	artist := labels.Fallback(FieldArtist, snap.Artist, snap.Buffering)
	album := labels.Fallback(FieldAlbum, snap.Album, snap.Buffering)

	text := &domain.TextContent{
		Title:     labels.Fallback(FieldTitle, snap.Title, snap.Buffering),
		Artist:    artist,
		Album:     album,
		Buffering: snap.Buffering,
		Composite: CompositeLabel(album, artist),
	}

	// the host controls volume itself while streaming
	if !snap.Streaming {
		text.VolumeVisible = true
		text.Volume = labels.Volume(int(math.Round(snap.VolumeFraction * 100)))
	}
	return text
}

// CompositeLabel builds "<album> - <artist>" with one clickable region per part.
// Offsets count characters, not bytes.
func CompositeLabel(album, artist string) domain.CompositeLabel {
	albumLen := utf8.RuneCountInString(album)
	artistStart := albumLen + utf8.RuneCountInString(compositeSeparator)

	return domain.CompositeLabel{
		Text: album + compositeSeparator + artist,
		Regions: []domain.Region{
			{Target: domain.TargetAlbum, Start: 0, End: albumLen},
			{Target: domain.TargetArtist, Start: artistStart, End: artistStart + utf8.RuneCountInString(artist)},
		},
	}
}
