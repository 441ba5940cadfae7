// Package terrain provides dense grid types and seeded noise synthesis for
// elevation, temperature, moisture, and wind fields.
package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Field is a dense row-major grid of float64 values.
type Field struct {
	W, H int
	Data []float64
}

// NewField creates a zero-filled field. Non-positive dimensions yield an
// empty field.
func NewField(w, h int) *Field {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Field{W: w, H: h, Data: make([]float64, w*h)}
}

// Len returns the number of cells.
func (f *Field) Len() int {
	return f.W * f.H
}

// InBounds reports whether (x, y) lies on the grid.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// Index returns the flat index of (x, y).
func (f *Field) Index(x, y int) int {
	return y*f.W + x
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Data[y*f.W+x]
}

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.Data[y*f.W+x] = v
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{W: f.W, H: f.H, Data: make([]float64, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// FieldStats summarizes a field for logging and export.
type FieldStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats computes min/max/mean over the field. Empty fields report zeros.
func (f *Field) Stats() FieldStats {
	if len(f.Data) == 0 {
		return FieldStats{}
	}
	return FieldStats{
		Min:  floats.Min(f.Data),
		Max:  floats.Max(f.Data),
		Mean: stat.Mean(f.Data, nil),
	}
}

// VectorField is a dense row-major grid of 2D vectors, stored as separate
// component planes.
type VectorField struct {
	W, H int
	DX   []float64
	DY   []float64
}

// NewVectorField creates a zero-filled vector field. Non-positive dimensions
// yield an empty field.
func NewVectorField(w, h int) *VectorField {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &VectorField{
		W: w, H: h,
		DX: make([]float64, w*h),
		DY: make([]float64, w*h),
	}
}

// At returns the vector components at (x, y).
func (vf *VectorField) At(x, y int) (dx, dy float64) {
	i := y*vf.W + x
	return vf.DX[i], vf.DY[i]
}

// Set stores vector components at (x, y).
func (vf *VectorField) Set(x, y int, dx, dy float64) {
	i := y*vf.W + x
	vf.DX[i] = dx
	vf.DY[i] = dy
}

// Add accumulates vector components at (x, y).
func (vf *VectorField) Add(x, y int, dx, dy float64) {
	i := y*vf.W + x
	vf.DX[i] += dx
	vf.DY[i] += dy
}
