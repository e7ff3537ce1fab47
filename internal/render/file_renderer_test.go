package render

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testConfig only provides the output directory
type testConfig struct {
	domain.Config
	outputDir string
}

func (c testConfig) OutputDir() string { return c.outputDir }

func newTestRenderer(t *testing.T) (*FileRenderer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFileRenderer(zap.New(core), testConfig{outputDir: t.TempDir()}), logs
}

func solid(w, h int) image.Image {
	return imaging.New(w, h, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
}

func text(title string) *domain.TextContent {
	return &domain.TextContent{
		Title:         title,
		Volume:        "50%",
		VolumeVisible: true,
		Composite:     domain.CompositeLabel{Text: "Discovery - Daft Punk"},
	}
}

func TestFileRenderer_ExportsArtwork(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.Render(domain.RenderInstruction{
		Visible:             true,
		Mode:                domain.ModeArtwork,
		ArtworkPanelVisible: true,
		TextPanelVisible:    true,
		Image:               solid(32, 24),
		Text:                text("One More Time"),
	})

	img, err := imaging.Open(r.Path())
	if err != nil {
		t.Fatalf("artwork not exported: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("unexpected exported size %v", img.Bounds())
	}

	entries, err := os.ReadDir(r.outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the artwork file, got %d entries", len(entries))
	}
}

func TestFileRenderer_ModesWithoutArtworkRemoveFile(t *testing.T) {
	tests := []struct {
		name  string
		instr domain.RenderInstruction
	}{
		{
			name:  "NoArtwork",
			instr: domain.RenderInstruction{Visible: true, Mode: domain.ModeNoArtwork, TextPanelVisible: true},
		},
		{
			name:  "Stopped",
			instr: domain.RenderInstruction{Visible: true, Mode: domain.ModeStopped},
		},
		{
			name:  "Invisible",
			instr: domain.RenderInstruction{Visible: false, Mode: domain.ModeArtwork, Image: solid(4, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRenderer(t)
			r.Render(domain.RenderInstruction{
				Visible:             true,
				Mode:                domain.ModeArtwork,
				ArtworkPanelVisible: true,
				Image:               solid(8, 8),
			})
			if _, err := os.Stat(r.Path()); err != nil {
				t.Fatalf("artwork not exported: %v", err)
			}

			r.Render(tt.instr)

			if _, err := os.Stat(r.Path()); !os.IsNotExist(err) {
				t.Errorf("expected artwork to be removed, stat err = %v", err)
			}
		})
	}
}

func TestFileRenderer_NilTextKeepsPreviousText(t *testing.T) {
	r, logs := newTestRenderer(t)

	r.Render(domain.RenderInstruction{Visible: true, Mode: domain.ModeNoArtwork, TextPanelVisible: true, Text: text("Aerodynamic")})
	r.Render(domain.RenderInstruction{Visible: true, Mode: domain.ModeNoArtwork, TextPanelVisible: true})

	entries := logs.FilterMessage("Now playing").All()
	if len(entries) != 2 {
		t.Fatalf("expected two render logs, got %d", len(entries))
	}
	if got := entries[1].ContextMap()["title"]; got != "Aerodynamic" {
		t.Errorf("expected the previous title, got %v", got)
	}
	if got := entries[1].ContextMap()["volume"]; got != "50%" {
		t.Errorf("expected the volume, got %v", got)
	}
}

func TestFileRenderer_Hide(t *testing.T) {
	r, logs := newTestRenderer(t)
	r.Render(domain.RenderInstruction{Visible: true, Mode: domain.ModeArtwork, ArtworkPanelVisible: true, Image: solid(8, 8)})

	r.Hide()

	if _, err := os.Stat(r.Path()); !os.IsNotExist(err) {
		t.Errorf("expected artwork to be removed, stat err = %v", err)
	}
	if logs.FilterMessage("Display hidden").Len() != 1 {
		t.Error("expected a hide log entry")
	}
}

func TestLogNavigator(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := NewLogNavigator(zap.New(core))

	n.OpenArtist(7, "Justice")
	n.OpenAlbum(12, "Cross")

	if logs.FilterMessage("Open artist").FilterField(zap.Int64("id", 7)).Len() != 1 {
		t.Error("artist navigation not logged")
	}
	if logs.FilterMessage("Open album").FilterField(zap.String("name", "Cross")).Len() != 1 {
		t.Error("album navigation not logged")
	}
}
