package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ExportPNG writes an image (typically the suitability overlay) to path.
func ExportPNG(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("no image to export")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
