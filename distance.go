package main

// Distance is the sum of squared per-byte differences between two rasters
// of the same size. Lower is better; 0 means identical.
func Distance(a, b Raster) uint64 {
	assertSameDims(a, b)

	var sum uint64
	bp := b.Pix[:len(a.Pix)]
	for i, av := range a.Pix {
		d := int64(av) - int64(bp[i])
		sum += uint64(d * d)
	}
	return sum
}
