package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/wellspring/config"
	"github.com/pthm-cable/wellspring/hydro"
	"github.com/pthm-cable/wellspring/scatter"
	"github.com/pthm-cable/wellspring/terrain"
)

func TestNewOutputManagerEmptyDir(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output with a nil manager")
	}

	// Every method must be a no-op on a nil receiver.
	if om.Dir() != "" {
		t.Error("nil manager reported a directory")
	}
	if err := om.WriteGrid("x.csv", terrain.NewField(2, 2)); err != nil {
		t.Errorf("nil WriteGrid: %v", err)
	}
	if err := om.WriteSources(nil, terrain.NewField(2, 2)); err != nil {
		t.Errorf("nil WriteSources: %v", err)
	}
	if err := om.WriteStats(nil); err != nil {
		t.Errorf("nil WriteStats: %v", err)
	}
}

func TestWriteGridMatrixShape(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	f := terrain.NewField(3, 2)
	f.Set(0, 0, 1.5)
	f.Set(2, 1, -4)
	if err := om.WriteGrid("elevation.csv", f); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, filepath.Join(dir, "elevation.csv"))
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("matrix shape %dx%d, want 2x3", len(rows), len(rows[0]))
	}
	if rows[0][0] != "1.5" || rows[1][2] != "-4" {
		t.Errorf("matrix values %v", rows)
	}
}

func TestWriteMaskAndNetwork(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	f := terrain.NewField(2, 1)
	f.Set(0, 0, -5)
	mask := hydro.Classify(f, -1)
	if err := om.WriteMask("water.csv", mask); err != nil {
		t.Fatal(err)
	}
	rows := readCSV(t, filepath.Join(dir, "water.csv"))
	if rows[0][0] != "1" || rows[0][1] != "0" {
		t.Errorf("mask row %v, want [1 0]", rows[0])
	}

	res, err := hydro.Synthesize(f, hydro.Params{SourcePercentile: 95})
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteNetwork("network.csv", res.Net); err != nil {
		t.Fatal(err)
	}
	rows = readCSV(t, filepath.Join(dir, "network.csv"))
	if len(rows) != 1 || len(rows[0]) != 2 {
		t.Fatalf("network shape %v", rows)
	}
}

func TestWriteSourcesRecords(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	f := terrain.NewField(3, 3)
	f.Set(1, 2, 42)
	if err := om.WriteSources([]hydro.Point{{X: 1, Y: 2}}, f); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, filepath.Join(dir, "sources.csv"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 record", len(rows))
	}
	if got := strings.Join(rows[0], ","); got != "x,y,elevation" {
		t.Errorf("header %q", got)
	}
	if rows[1][0] != "1" || rows[1][1] != "2" || rows[1][2] != "42" {
		t.Errorf("record %v", rows[1])
	}
}

func TestWriteGraphFiles(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	points := []scatter.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
	edges := []scatter.Edge{{A: 0, B: 1}}
	if err := om.WriteGraph(points, edges); err != nil {
		t.Fatal(err)
	}

	pts := readCSV(t, filepath.Join(dir, "points.csv"))
	if len(pts) != 3 {
		t.Fatalf("points.csv has %d rows, want header + 2", len(pts))
	}
	es := readCSV(t, filepath.Join(dir, "edges.csv"))
	if len(es) != 2 {
		t.Fatalf("edges.csv has %d rows, want header + 1", len(es))
	}
	if es[1][2] != "5" {
		t.Errorf("edge length %q, want 5 (3-4-5 triangle)", es[1][2])
	}
}

func TestWriteConfigSnapshot(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}

	back, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("snapshot does not load back: %v", err)
	}
	if back.World.Width != cfg.World.Width {
		t.Errorf("snapshot width %d, want %d", back.World.Width, cfg.World.Width)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}
