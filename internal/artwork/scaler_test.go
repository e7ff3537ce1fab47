package artwork

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/genricoloni/nowplaying/internal/domain"
	"go.uber.org/zap"
)

func TestScaler_Decode(t *testing.T) {
	tests := []struct {
		name           string
		imageData      []byte
		size           domain.SizeTier
		expectedError  string
		expectedWidth  int
		expectedHeight int
	}{
		{
			name:           "Success - Square Image Fits Tier",
			imageData:      createTestJPEG(1000, 1000, color.RGBA{R: 255, A: 255}),
			size:           domain.SizeLarge,
			expectedWidth:  600,
			expectedHeight: 600,
		},
		{
			name:           "Success - Keeps Aspect Ratio",
			imageData:      createTestJPEG(400, 200, color.RGBA{G: 255, A: 255}),
			size:           domain.SizeMedium,
			expectedWidth:  174,
			expectedHeight: 87,
		},
		{
			name:           "Edge Case - Small Image Is Not Upscaled",
			imageData:      createTestJPEG(32, 32, color.RGBA{B: 255, A: 255}),
			size:           domain.SizeExtraLarge,
			expectedWidth:  32,
			expectedHeight: 32,
		},
		{
			name:          "Error - Invalid Image Data",
			imageData:     []byte("not-an-image"),
			size:          domain.SizeLarge,
			expectedError: "failed to decode image",
		},
		{
			name:          "Error - Empty Data",
			imageData:     []byte{},
			size:          domain.SizeLarge,
			expectedError: "failed to decode image",
		},
		{
			name:          "Error - Corrupted JPEG",
			imageData:     []byte{0xFF, 0xD8, 0xFF, 0x00, 0x00}, // Partial JPEG header
			size:          domain.SizeLarge,
			expectedError: "failed to decode image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := NewScaler(zap.NewNop())
			img, err := scaler.Decode(tt.imageData, tt.size)

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			bounds := img.Bounds()
			if bounds.Dx() != tt.expectedWidth || bounds.Dy() != tt.expectedHeight {
				t.Errorf("expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

// createTestJPEG generates a solid color JPEG image for testing
func createTestJPEG(width, height int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	buf := new(bytes.Buffer)
	_ = jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}
