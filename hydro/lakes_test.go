package hydro

import (
	"testing"

	"github.com/pthm-cable/wellspring/terrain"
)

func TestExpandLakeFlatBasin(t *testing.T) {
	// Connected pocket of cells at the global minimum elevation 0; the 0 at
	// (4,4) is separated from it by higher ground.
	f := fieldFrom([][]float64{
		{9, 9, 9, 9, 9},
		{9, 0, 0, 9, 9},
		{9, 0, 9, 9, 9},
		{9, 0, 0, 9, 9},
		{9, 9, 9, 9, 0},
	})

	net := NewNetwork(f.W, f.H)
	if err := net.ExpandLake(f, Point{X: 1, Y: 1}, 0, 0); err != nil {
		t.Fatal(err)
	}

	want := map[Point]bool{
		{1, 1}: true, {2, 1}: true,
		{1, 2}: true,
		{1, 3}: true, {2, 3}: true,
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			isLake := net.At(x, y).Kind == Lake
			if isLake != want[Point{X: x, Y: y}] {
				t.Errorf("cell (%d,%d): lake=%v, want %v", x, y, isLake, want[Point{X: x, Y: y}])
			}
		}
	}
}

func TestExpandLakeDepthAndGradientLimits(t *testing.T) {
	// One row: seed at elevation 10. Fill reaches +lakeDepth above and
	// -maxGradient below the SEED, nothing further.
	f := fieldFrom([][]float64{
		{100, 7, 9, 10, 12, 15, 100},
	})

	net := NewNetwork(f.W, f.H)
	if err := net.ExpandLake(f, Point{X: 3, Y: 0}, 5, 3); err != nil {
		t.Fatal(err)
	}

	wantLake := []bool{false, true, true, true, true, true, false}
	for x, want := range wantLake {
		if got := net.At(x, 0).Kind == Lake; got != want {
			t.Errorf("cell (%d,0) elevation %v: lake=%v, want %v", x, f.At(x, 0), got, want)
		}
	}
}

func TestExpandLakeNeverOverwritesRiver(t *testing.T) {
	f := terrain.NewField(5, 5) // flat, everything admissible

	net := NewNetwork(5, 5)
	net.setRiver(2, 2, 4)
	if err := net.ExpandLake(f, Point{X: 0, Y: 0}, 10, 10); err != nil {
		t.Fatal(err)
	}

	c := net.At(2, 2)
	if c.Kind != River || c.Width != 4 {
		t.Fatalf("river cell downgraded to %+v by lake expansion", c)
	}
	// The cells beyond the river must still flood: rivers block marking,
	// not expansion.
	if net.At(4, 4).Kind != Lake {
		t.Error("expansion did not pass through the river cell")
	}
}

func TestExpandLakeVisitsOncePerInvocation(t *testing.T) {
	// A flat field floods completely and terminates; the visited set is the
	// only thing standing between this and an endless requeue loop.
	f := terrain.NewField(12, 12)

	net := NewNetwork(12, 12)
	if err := net.ExpandLake(f, Point{X: 6, Y: 6}, 0, 0); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if net.At(x, y).Kind != Lake {
				t.Fatalf("cell (%d,%d) not flooded on flat field", x, y)
			}
		}
	}
}

func TestExpandLakeRejectsNegativeLimits(t *testing.T) {
	f := terrain.NewField(3, 3)
	net := NewNetwork(3, 3)

	if err := net.ExpandLake(f, Point{X: 1, Y: 1}, -1, 0); err == nil {
		t.Error("negative lake depth accepted")
	}
	if err := net.ExpandLake(f, Point{X: 1, Y: 1}, 0, -1); err == nil {
		t.Error("negative max gradient accepted")
	}
}

func TestExpandLakeOutOfBoundsSeed(t *testing.T) {
	f := terrain.NewField(3, 3)
	net := NewNetwork(3, 3)

	if err := net.ExpandLake(f, Point{X: 7, Y: 7}, 1, 1); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if net.At(x, y).Kind != Empty {
				t.Errorf("out-of-bounds seed marked cell (%d,%d)", x, y)
			}
		}
	}
}
