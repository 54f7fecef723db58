package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"lisa_evolver/logx"
)

// LoadTarget decodes the image at path into an RGB raster. When maxSize is
// positive and the longest side exceeds it, the image is first downscaled
// keeping its aspect ratio.
func LoadTarget(path string, maxSize int) (Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Raster{}, fmt.Errorf("open target: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Raster{}, fmt.Errorf("decode target %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return Raster{}, fmt.Errorf("target %s has no pixels", path)
	}
	logx.LogTarget("loaded %s (%s, %dx%d)", path, format, b.Dx(), b.Dy())

	if w, h, ok := fitWithin(b.Dx(), b.Dy(), maxSize); ok {
		img = transform.Resize(img, w, h, transform.Linear)
		logx.LogTarget("resized to %dx%d", w, h)
	}
	return RasterFromImage(img), nil
}

// fitWithin scales w x h so the longest side is maxSize. ok is false when no
// resize is needed.
func fitWithin(w, h, maxSize int) (int, int, bool) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h, false
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w), true
	}
	return max(1, w*maxSize/h), maxSize, true
}
