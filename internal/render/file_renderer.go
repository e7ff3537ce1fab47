package render

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

const (
	artworkFilename = "now_playing.jpg"
	jpegQuality     = 90
)

// FileRenderer draws the panel for a headless host: text goes to the log and
// the visible artwork is exported as a JPEG file.
type FileRenderer struct {
	logger    *zap.Logger
	outputDir string

	// text is the last rendered text, kept for instructions that leave it untouched
	text     *domain.TextContent
	exported image.Image
}

// NewFileRenderer creates a renderer exporting to the configured output directory
func NewFileRenderer(logger *zap.Logger, cfg domain.Config) *FileRenderer {
	return &FileRenderer{
		logger:    logger,
		outputDir: cfg.OutputDir(),
	}
}

// Path returns where the artwork is exported
func (r *FileRenderer) Path() string {
	return filepath.Join(r.outputDir, artworkFilename)
}

// Render applies instr. Rendering errors are logged, never returned.
func (r *FileRenderer) Render(instr domain.RenderInstruction) {
	if !instr.Visible {
		r.Hide()
		return
	}

	if instr.Text != nil {
		r.text = instr.Text
	}

	if instr.Mode == domain.ModeArtwork && instr.ArtworkPanelVisible && instr.Image != nil {
		if instr.Image != r.exported {
			if err := r.export(instr.Image); err != nil {
				r.logger.Error("Failed to export artwork", zap.String("path", r.Path()), zap.Error(err))
			} else {
				r.exported = instr.Image
			}
		}
	} else {
		r.removeArtwork()
	}

	fields := []zap.Field{zap.Stringer("mode", instr.Mode)}
	if r.text != nil && instr.TextPanelVisible {
		fields = append(fields,
			zap.String("title", r.text.Title),
			zap.String("label", r.text.Composite.Text),
			zap.Bool("buffering", r.text.Buffering))
		if r.text.VolumeVisible {
			fields = append(fields, zap.String("volume", r.text.Volume))
		}
	}
	r.logger.Info("Now playing", fields...)
}

// Hide removes the exported artwork
func (r *FileRenderer) Hide() {
	r.removeArtwork()
	r.logger.Info("Display hidden")
}

// export writes img next to its final path and renames it into place
func (r *FileRenderer) export(img image.Image) error {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(r.outputDir, artworkFilename+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode artwork: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), r.Path()); err != nil {
		return fmt.Errorf("failed to write artwork file: %w", err)
	}

	r.logger.Debug("Artwork exported", zap.String("path", r.Path()))
	return nil
}

func (r *FileRenderer) removeArtwork() {
	r.exported = nil
	if err := os.Remove(r.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("Failed to remove artwork", zap.String("path", r.Path()), zap.Error(err))
	}
}
