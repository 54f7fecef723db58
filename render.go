package main

// Render composites c onto a fresh black w x h raster.
//
// Shapes are drawn in slice order, head first. Because the mutator inserts at
// the head, older shapes end up blended over newer ones where they overlap.
func Render(c Candidate, w, h int) Raster {
	dst := NewRaster(w, h)
	renderInto(dst, c)
	return dst
}

// renderInto composites c onto dst as is; callers pass a zeroed raster.
//
// Blending is integer only: out = (255-a)*old>>8 + c*a>>8 per channel. The
// >>8 stands in for /255, so even a=255 leaves the result slightly darker
// than the source colour. Scores depend on this exact rounding.
func renderInto(dst Raster, c Candidate) {
	w, h, pix := dst.Width, dst.Height, dst.Pix

	for _, s := range c {
		a := uint(s.Color.A)
		aInv := 0xff - a
		rBlend := uint(s.Color.R) * a >> 8
		gBlend := uint(s.Color.G) * a >> 8
		bBlend := uint(s.Color.B) * a >> 8

		fromY := max(0, s.Y-s.Radius)
		toY := min(h, s.Y+s.Radius+1)

		for y := fromY; y < toY; y++ {
			stride := s.Stride(y)
			if stride < 0 {
				continue
			}
			fromX := max(0, s.X-stride)
			toX := min(w, s.X+stride+1)

			row := y * w * 3
			for x := fromX; x < toX; x++ {
				i := row + x*3
				pix[i+0] = byte(aInv*uint(pix[i+0])>>8 + rBlend)
				pix[i+1] = byte(aInv*uint(pix[i+1])>>8 + gBlend)
				pix[i+2] = byte(aInv*uint(pix[i+2])>>8 + bBlend)
			}
		}
	}
}
