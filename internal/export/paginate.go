package export

import "math"

// band is a horizontal slice of the full raster, in raster pixels.
type band struct {
	Y int
	H int
}

// paginate splits a raster of rasterW x rasterH pixels into bands, one per
// output page. The raster is scaled so its width exactly fills the page
// width, so one page covers pageHPt/pageWPt*rasterW raster pixels of height.
// The final band is clipped to the remaining content.
func paginate(rasterW, rasterH int, pageWPt, pageHPt float64) []band {
	if rasterW <= 0 || rasterH <= 0 || pageWPt <= 0 || pageHPt <= 0 {
		return nil
	}

	pagePx := pageHPt / pageWPt * float64(rasterW)
	total := int(math.Ceil(float64(rasterH) / pagePx))

	bands := make([]band, 0, total)
	for i := 0; i < total; i++ {
		y := int(math.Floor(float64(i) * pagePx))
		h := int(math.Ceil(math.Min(pagePx, float64(rasterH)-float64(y))))
		if h <= 0 {
			break
		}
		bands = append(bands, band{Y: y, H: h})
	}
	return bands
}
