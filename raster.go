package main

import (
	"image"
)

// Raster is a packed row-major RGB buffer, 3 bytes per pixel.
type Raster struct {
	Width  int
	Height int
	Pix    []byte // len = Width*Height*3
}

// NewRaster returns an all-zero (black) raster.
func NewRaster(w, h int) Raster {
	return Raster{Width: w, Height: h, Pix: make([]byte, w*h*3)}
}

// RasterFromImage samples img into an RGB raster, dropping alpha and keeping
// the high byte of each 16-bit channel.
func RasterFromImage(img image.Image) Raster {
	b := img.Bounds()
	out := NewRaster(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out.Pix[i+0] = byte(r >> 8)
			out.Pix[i+1] = byte(g >> 8)
			out.Pix[i+2] = byte(bl >> 8)
			i += 3
		}
	}
	return out
}

// Image converts the raster to an opaque RGBA image for encoding.
func (r Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i, j := 0, 0; i < len(r.Pix); i, j = i+3, j+4 {
		img.Pix[j+0] = r.Pix[i+0]
		img.Pix[j+1] = r.Pix[i+1]
		img.Pix[j+2] = r.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At returns the RGB triple at (x, y).
func (r Raster) At(x, y int) (uint8, uint8, uint8) {
	i := (y*r.Width + x) * 3
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

func (r Raster) clear() {
	for i := range r.Pix {
		r.Pix[i] = 0
	}
}
