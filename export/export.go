// Package export writes pipeline artifacts to disk: grid matrices and
// record tables as CSV, plus a config snapshot as YAML.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/wellspring/config"
	"github.com/pthm-cable/wellspring/hydro"
	"github.com/pthm-cable/wellspring/scatter"
	"github.com/pthm-cable/wellspring/terrain"
)

// OutputManager writes run artifacts into one output directory.
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory. Returns nil if dir is empty
// (output disabled); all methods tolerate a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGrid writes a field as a height-by-width CSV matrix, one row per grid
// row. Matrices are not record tables, so they go through encoding/csv
// directly.
func (om *OutputManager) WriteGrid(name string, f *terrain.Field) error {
	if om == nil {
		return nil
	}
	row := make([]string, f.W)
	return om.writeMatrix(name, f.W, f.H, func(w *csv.Writer, y int) error {
		for x := 0; x < f.W; x++ {
			row[x] = strconv.FormatFloat(f.At(x, y), 'g', -1, 64)
		}
		return w.Write(row)
	})
}

// WriteMask writes a water mask as a 0/1 CSV matrix.
func (om *OutputManager) WriteMask(name string, m *hydro.Mask) error {
	if om == nil {
		return nil
	}
	row := make([]string, m.W)
	return om.writeMatrix(name, m.W, m.H, func(w *csv.Writer, y int) error {
		for x := 0; x < m.W; x++ {
			if m.Water(x, y) {
				row[x] = "1"
			} else {
				row[x] = "0"
			}
		}
		return w.Write(row)
	})
}

// WriteNetwork writes a river/lake network in its numeric encoding: 0 empty,
// river width, or the lake sentinel.
func (om *OutputManager) WriteNetwork(name string, n *hydro.Network) error {
	if om == nil {
		return nil
	}
	row := make([]string, n.W)
	return om.writeMatrix(name, n.W, n.H, func(w *csv.Writer, y int) error {
		for x := 0; x < n.W; x++ {
			row[x] = strconv.FormatFloat(n.Value(x, y), 'g', -1, 64)
		}
		return w.Write(row)
	})
}

func (om *OutputManager) writeMatrix(name string, width, height int, writeRow func(*csv.Writer, int) error) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for y := 0; y < height; y++ {
		if err := writeRow(w, y); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", name, err)
	}
	return nil
}

// SourceRecord is one detected river source.
type SourceRecord struct {
	X         int     `csv:"x"`
	Y         int     `csv:"y"`
	Elevation float64 `csv:"elevation"`
}

// WriteSources writes detected river sources to sources.csv.
func (om *OutputManager) WriteSources(sources []hydro.Point, elev *terrain.Field) error {
	if om == nil {
		return nil
	}
	records := make([]SourceRecord, len(sources))
	for i, s := range sources {
		records[i] = SourceRecord{X: s.X, Y: s.Y, Elevation: elev.At(s.X, s.Y)}
	}
	return om.writeRecords("sources.csv", &records)
}

// PointRecord is one scattered point.
type PointRecord struct {
	ID int     `csv:"id"`
	X  float64 `csv:"x"`
	Y  float64 `csv:"y"`
}

// EdgeRecord is one graph edge between scattered points.
type EdgeRecord struct {
	A      int     `csv:"a"`
	B      int     `csv:"b"`
	Length float64 `csv:"length"`
}

// WriteGraph writes scattered points and their connecting edges to
// points.csv and edges.csv.
func (om *OutputManager) WriteGraph(points []scatter.Point, edges []scatter.Edge) error {
	if om == nil {
		return nil
	}

	pts := make([]PointRecord, len(points))
	for i, p := range points {
		pts[i] = PointRecord{ID: i, X: p.X, Y: p.Y}
	}
	if err := om.writeRecords("points.csv", &pts); err != nil {
		return err
	}

	es := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		es[i] = EdgeRecord{A: e.A, B: e.B, Length: scatter.Distance(points[e.A], points[e.B])}
	}
	return om.writeRecords("edges.csv", &es)
}

// StatsRecord summarizes one grid for the run log.
type StatsRecord struct {
	Name string  `csv:"name"`
	Min  float64 `csv:"min"`
	Max  float64 `csv:"max"`
	Mean float64 `csv:"mean"`
}

// WriteStats writes per-grid summary statistics to stats.csv.
func (om *OutputManager) WriteStats(records []StatsRecord) error {
	if om == nil {
		return nil
	}
	return om.writeRecords("stats.csv", &records)
}

func (om *OutputManager) writeRecords(name string, records interface{}) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
