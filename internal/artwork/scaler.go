package artwork

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support

	"github.com/disintegration/imaging"
	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

// Scaler decodes artwork and shrinks it to a size tier
type Scaler struct {
	logger *zap.Logger
}

// NewScaler creates a new artwork scaler
func NewScaler(logger *zap.Logger) *Scaler {
	return &Scaler{logger: logger}
}

// Decode decodes imageData and fits it inside the tier's square, keeping the aspect ratio.
// Smaller images are never upscaled.
func (s *Scaler) Decode(imageData []byte, size domain.SizeTier) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dy() == 0 || bounds.Dx() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	px := size.Pixels()
	if bounds.Dx() <= px && bounds.Dy() <= px {
		return img, nil
	}

	s.logger.Debug("Resizing artwork",
		zap.String("format", format),
		zap.Int("w", bounds.Dx()),
		zap.Int("h", bounds.Dy()),
		zap.Stringer("tier", size))
	return imaging.Fit(img, px, px, imaging.Lanczos), nil
}
