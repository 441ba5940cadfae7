package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Generator synthesizes terrain fields from seeded OpenSimplex noise.
// The same seed always produces the same fields.
type Generator struct {
	noise opensimplex.Noise
}

// NewGenerator creates a generator with a fixed seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{noise: opensimplex.New(seed)}
}

// Elevation generates a multi-octave elevation field. Each octave halves the
// noise scale and multiplies the amplitude by persistence. The normalized
// noise sum (≈[-0.5, 0.5]) is rescaled to [minElev, maxElev]. xStart/yStart
// offset the sample window so adjacent chunks line up.
func (g *Generator) Elevation(xStart, yStart, w, h int, scale float64, octaves int, persistence, minElev, maxElev float64) *Field {
	f := NewField(w, h)
	if f.Len() == 0 || octaves < 1 {
		return f
	}

	maxAmplitude := 0.0
	amplitude := 1.0
	for o := 0; o < octaves; o++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				nx := float64(xStart+x) / scale
				ny := float64(yStart+y) / scale
				f.Data[f.Index(x, y)] += amplitude * g.noise.Eval2(nx, ny)
			}
		}
		maxAmplitude += amplitude
		amplitude *= persistence
		scale /= 2
	}

	for i := range f.Data {
		v := f.Data[i] / maxAmplitude
		f.Data[i] = minElev + (v+0.5)*(maxElev-minElev)
	}
	return f
}

// TemperatureParams configures Temperature.
type TemperatureParams struct {
	Scale       float64 // noise scale
	EquatorY    int     // grid row of the equator
	MaxLatitude float64 // rows from equator at which the latitudinal term bottoms out
	MinTemp     float64
	MaxTemp     float64
	NoiseScale  float64 // fraction of the temperature range driven by noise
}

// Temperature generates a temperature field: a quadratic latitude falloff
// from the equator row plus scaled noise, clamped to [MinTemp, MaxTemp].
func (g *Generator) Temperature(xStart, yStart, w, h int, p TemperatureParams) *Field {
	f := NewField(w, h)
	tempRange := p.MaxTemp - p.MinTemp
	for y := 0; y < h; y++ {
		dist := math.Abs(float64(yStart + y - p.EquatorY))
		latFactor := 1 - (dist*dist)/(p.MaxLatitude*p.MaxLatitude)
		base := p.MinTemp + latFactor*tempRange

		for x := 0; x < w; x++ {
			n := g.noise.Eval2(float64(xStart+x)/p.Scale, float64(yStart+y)/p.Scale)
			t := base + n*tempRange*p.NoiseScale
			f.Set(x, y, clamp(t, p.MinTemp, p.MaxTemp))
		}
	}
	return f
}

// Moisture generates a multi-octave moisture field in ≈[-0.5, 0.5].
func (g *Generator) Moisture(xStart, yStart, w, h int, scale float64, octaves int, persistence float64) *Field {
	f := NewField(w, h)
	if f.Len() == 0 || octaves < 1 {
		return f
	}

	maxAmplitude := 0.0
	amplitude := 1.0
	for o := 0; o < octaves; o++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				nx := float64(xStart+x) / scale
				ny := float64(yStart+y) / scale
				f.Data[f.Index(x, y)] += amplitude * g.noise.Eval2(nx, ny)
			}
		}
		maxAmplitude += amplitude
		amplitude *= persistence
		scale /= 2
	}

	for i := range f.Data {
		f.Data[i] /= maxAmplitude
	}
	return f
}

// SeasonalModifier returns the sinusoidal temperature shift for a day of the
// year.
func SeasonalModifier(dayOfYear int, amplitude float64, daysInYear int) float64 {
	radians := (2 * math.Pi / float64(daysInYear)) * float64(dayOfYear)
	return amplitude * math.Sin(radians)
}

// ApplySeasonalVariation returns a copy of the temperature field shifted
// uniformly by the seasonal modifier.
func ApplySeasonalVariation(temp *Field, dayOfYear int, amplitude float64, daysInYear int) *Field {
	out := temp.Clone()
	shift := SeasonalModifier(dayOfYear, amplitude, daysInYear)
	for i := range out.Data {
		out.Data[i] += shift
	}
	return out
}

// LatitudeSeasonalScale scales the seasonal effect by latitude: weakest at
// the poles when scalingFactor < 1.
func LatitudeSeasonalScale(latitude, maxLatitude, scalingFactor float64) float64 {
	return 1 - math.Pow(math.Abs(latitude)/maxLatitude, scalingFactor)
}

// ApplySeasonalAndLatitudeVariation returns a copy of the temperature field
// with a per-row seasonal shift scaled by distance from the equator row.
func ApplySeasonalAndLatitudeVariation(temp *Field, dayOfYear int, maxLatitude float64, equatorY int, amplitude float64, daysInYear int, scalingFactor float64) *Field {
	out := temp.Clone()
	base := SeasonalModifier(dayOfYear, amplitude, daysInYear)
	for y := 0; y < out.H; y++ {
		lat := float64(y - equatorY)
		shift := base * LatitudeSeasonalScale(lat, maxLatitude, scalingFactor)
		for x := 0; x < out.W; x++ {
			out.Data[out.Index(x, y)] += shift
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
