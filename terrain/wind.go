package terrain

import "math"

// Prevailing wind bands by latitude, expressed as (dx, dy) unit directions.
// Latitude here is the row position mapped onto [-90, 90].
//
//	|lat| <= 30  trade winds, east to west
//	30 < |lat| <= 60  westerlies, west to east
//	|lat| > 60  polar easterlies, east to west
func prevailingWind(latitude float64) (dx, dy float64) {
	a := math.Abs(latitude)
	if a > 30 && a <= 60 {
		return 1, 0
	}
	return -1, 0
}

// WindMap generates a per-cell prevailing wind field from latitude bands.
// Row 0 maps to latitude -90, the last row to +90.
func WindMap(w, h int) *VectorField {
	vf := NewVectorField(w, h)
	for y := 0; y < h; y++ {
		lat := (float64(y)/float64(h))*180 - 90
		dx, dy := prevailingWind(lat)
		for x := 0; x < w; x++ {
			vf.Set(x, y, dx, dy)
		}
	}
	return vf
}

// AdjustWindForElevation diverts wind around high terrain. Cells adjacent
// (4-neighborhood) to elevation above threshold have their wind replaced by
// the diversion vector, which runs perpendicular to the local elevation
// gradient; other cells get a small gradient-based nudge added. The wind
// field is modified in place and returned.
func AdjustWindForElevation(wind *VectorField, elev *Field, threshold float64) *VectorField {
	for y := 0; y < wind.H; y++ {
		for x := 0; x < wind.W; x++ {
			if adjacentToHighElevation(elev, x, y, threshold) {
				dx, dy := windDiversion(elev, x, y)
				wind.Set(x, y, dx, dy)
			} else {
				dx, dy := windDiversion(elev, x, y)
				wind.Add(x, y, dx, dy)
			}
		}
	}
	return wind
}

// adjacentToHighElevation reports whether any 4-neighbor of (x, y) exceeds
// the elevation threshold.
func adjacentToHighElevation(elev *Field, x, y int, threshold float64) bool {
	offsets := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if elev.InBounds(nx, ny) && elev.At(nx, ny) > threshold {
			return true
		}
	}
	return false
}

// windDiversion returns a unit vector perpendicular to the local elevation
// gradient at (x, y): wind flows around rather than over rising terrain.
// Each 8-neighbor contributes its elevation difference along its offset
// direction, weighted by inverse distance.
func windDiversion(elev *Field, x, y int) (dx, dy float64) {
	var gx, gy float64
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			nx, ny := x+ox, y+oy
			if !elev.InBounds(nx, ny) {
				continue
			}
			dist := math.Hypot(float64(ox), float64(oy))
			weight := 1 / (1 + dist)
			diff := elev.At(nx, ny) - elev.At(x, y)
			gx += weight * diff * float64(ox) / dist
			gy += weight * diff * float64(oy) / dist
		}
	}

	mag := math.Hypot(gx, gy)
	if mag == 0 {
		return 0, 0
	}
	gx /= mag
	gy /= mag

	// Perpendicular to the gradient.
	return -gy, gx
}

// OrographicMoisture recomputes moisture from the elevation rise faced by
// the wind: each cell takes the positive elevation difference toward its
// upwind neighbor, or keeps its moisture when the neighbor is off-grid.
func OrographicMoisture(moisture, elev *Field, wind *VectorField) *Field {
	out := moisture.Clone()
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			dx, dy := wind.At(x, y)
			nx, ny := x+int(dx), y+int(dy)
			if !elev.InBounds(nx, ny) {
				continue
			}
			out.Set(x, y, math.Max(0, elev.At(nx, ny)-elev.At(x, y)))
		}
	}
	return out
}

// AdjustTemperatureForElevation applies a lapse-rate cooling proportional to
// elevation, returning a new field.
func AdjustTemperatureForElevation(temp, elev *Field, lapseRate float64) *Field {
	out := temp.Clone()
	for i := range out.Data {
		out.Data[i] -= lapseRate * elev.Data[i]
	}
	return out
}
