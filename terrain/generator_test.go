package terrain

import (
	"math"
	"testing"
)

func TestElevationDeterministic(t *testing.T) {
	a := NewGenerator(42).Elevation(0, 0, 16, 16, 10, 4, 0.5, -1000, 15000)
	b := NewGenerator(42).Elevation(0, 0, 16, 16, 10, 4, 0.5, -1000, 15000)

	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("same seed diverged at index %d: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}

	c := NewGenerator(43).Elevation(0, 0, 16, 16, 10, 4, 0.5, -1000, 15000)
	same := true
	for i := range a.Data {
		if a.Data[i] != c.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical elevation")
	}
}

func TestElevationWindowOffset(t *testing.T) {
	gen := NewGenerator(42)
	whole := gen.Elevation(0, 0, 20, 10, 10, 3, 0.5, 0, 100)
	right := gen.Elevation(10, 0, 10, 10, 10, 3, 0.5, 0, 100)

	// The offset window reproduces the right half of the larger window, so
	// chunked generation lines up seamlessly.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if whole.At(x+10, y) != right.At(x, y) {
				t.Fatalf("offset window mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestElevationVariesAcrossGrid(t *testing.T) {
	f := NewGenerator(1).Elevation(0, 0, 24, 24, 8, 4, 0.5, -500, 500)

	s := f.Stats()
	if s.Min == s.Max {
		t.Errorf("elevation field is flat (min == max == %v)", s.Min)
	}
}

func TestElevationDegenerate(t *testing.T) {
	f := NewGenerator(1).Elevation(0, 0, 0, 5, 8, 4, 0.5, 0, 1)
	if f.Len() != 0 {
		t.Errorf("zero-width field has %d cells", f.Len())
	}
}

func TestTemperatureClamped(t *testing.T) {
	p := TemperatureParams{
		Scale:       10,
		EquatorY:    16,
		MaxLatitude: 20,
		MinTemp:     -20,
		MaxTemp:     120,
		NoiseScale:  0.5,
	}
	f := NewGenerator(42).Temperature(0, 0, 32, 32, p)

	for i, v := range f.Data {
		if v < p.MinTemp || v > p.MaxTemp {
			t.Fatalf("temperature %v at index %d outside [%v, %v]", v, i, p.MinTemp, p.MaxTemp)
		}
	}
}

func TestTemperatureWarmestAtEquator(t *testing.T) {
	p := TemperatureParams{
		Scale:       10,
		EquatorY:    10,
		MaxLatitude: 20,
		MinTemp:     -20,
		MaxTemp:     120,
		NoiseScale:  0, // pure latitude term
	}
	f := NewGenerator(42).Temperature(0, 0, 4, 21, p)

	for x := 0; x < f.W; x++ {
		eq := f.At(x, 10)
		if f.At(x, 0) >= eq || f.At(x, 20) >= eq {
			t.Errorf("column %d: equator %v not warmer than poles %v / %v",
				x, eq, f.At(x, 0), f.At(x, 20))
		}
	}
}

func TestSeasonalModifier(t *testing.T) {
	if got := SeasonalModifier(0, 10, 365); got != 0 {
		t.Errorf("day 0 modifier = %v, want 0", got)
	}
	// A quarter year in, the sine peaks at the full amplitude.
	got := SeasonalModifier(365/4, 10, 365)
	if math.Abs(got-10) > 0.01 {
		t.Errorf("quarter-year modifier = %v, want ~10", got)
	}
}

func TestApplySeasonalVariationShiftsUniformly(t *testing.T) {
	base := NewGenerator(3).Temperature(0, 0, 8, 8, TemperatureParams{
		Scale: 10, EquatorY: 4, MaxLatitude: 10, MinTemp: -20, MaxTemp: 120, NoiseScale: 0.5,
	})

	shifted := ApplySeasonalVariation(base, 91, 20, 365)
	want := SeasonalModifier(91, 20, 365)

	for i := range base.Data {
		if math.Abs(shifted.Data[i]-base.Data[i]-want) > 1e-9 {
			t.Fatalf("index %d shifted by %v, want %v", i, shifted.Data[i]-base.Data[i], want)
		}
	}
	if base.At(0, 0) == shifted.At(0, 0) && want != 0 {
		t.Error("ApplySeasonalVariation mutated nothing")
	}
}

func TestApplySeasonalAndLatitudeVariation(t *testing.T) {
	base := NewField(4, 9)

	out := ApplySeasonalAndLatitudeVariation(base, 91, 10, 4, 20, 365, 0.5)

	// The equator row gets the full shift, rows away from it less.
	eqShift := out.At(0, 4) - base.At(0, 4)
	poleShift := out.At(0, 8) - base.At(0, 8)
	if !(math.Abs(poleShift) < math.Abs(eqShift)) {
		t.Errorf("pole shift %v not smaller than equator shift %v", poleShift, eqShift)
	}
	// Rows equidistant from the equator shift identically.
	if math.Abs((out.At(0, 2)-base.At(0, 2))-(out.At(0, 6)-base.At(0, 6))) > 1e-9 {
		t.Error("symmetric rows shifted differently")
	}
	// The input field stays untouched.
	if base.At(0, 4) != 0 {
		t.Error("seasonal adjustment mutated its input")
	}
}

func TestMoistureDeterministicAndBounded(t *testing.T) {
	a := NewGenerator(8).Moisture(0, 0, 16, 16, 10, 2, 0.5)
	b := NewGenerator(8).Moisture(0, 0, 16, 16, 10, 2, 0.5)

	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("same seed diverged at index %d", i)
		}
		if math.Abs(a.Data[i]) > 1 {
			t.Fatalf("normalized moisture %v at index %d outside [-1, 1]", a.Data[i], i)
		}
	}
}
