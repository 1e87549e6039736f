package model

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/meshkit/pkg/math"
)

// Extents returns the componentwise min/max over all vertex positions.
func (m *Mesh) Extents() Bounds {
	positions := make([]math.Vec3, len(m.vertices))
	for i := range m.vertices {
		positions[i] = m.vertices[i].Position
	}
	return boundsOf(positions)
}

// Centroid returns the arithmetic mean of all vertex positions.
func (m *Mesh) Centroid() math.Vec3 {
	if len(m.vertices) == 0 {
		return math.Vec3{}
	}
	// Accumulate in float64 to keep large meshes from drifting.
	var x, y, z float64
	for i := range m.vertices {
		p := m.vertices[i].Position
		x += float64(p.X)
		y += float64(p.Y)
		z += float64(p.Z)
	}
	n := float64(len(m.vertices))
	return math.Vec3{X: float32(x / n), Y: float32(y / n), Z: float32(z / n)}
}

// NormalizeScale uniformly scales the mesh so its longest axis has length 1.
// Returns ErrDegenerateGeometry if all positions coincide.
func (m *Mesh) NormalizeScale() (*Mesh, error) {
	size := m.Extents().Size()
	extent := size.MaxComponent()
	if extent == 0 || !size.IsFinite() {
		return nil, fmt.Errorf("%w: longest axis is %v", ErrDegenerateGeometry, extent)
	}

	s := 1 / extent
	return m.mapPositions(func(p math.Vec3) math.Vec3 {
		return p.Scale(s)
	}), nil
}

// Recenter translates the mesh so the point chosen by policy sits at the origin.
func (m *Mesh) Recenter(policy CenterPolicy) *Mesh {
	var center math.Vec3
	switch policy {
	case CenterBounds:
		center = m.Extents().Center()
	default:
		center = m.Centroid()
	}
	return m.mapPositions(func(p math.Vec3) math.Vec3 {
		return p.Sub(center)
	})
}

// Normalize scales then recenters. The order is fixed.
func (m *Mesh) Normalize(policy CenterPolicy) (*Mesh, error) {
	scaled, err := m.NormalizeScale()
	if err != nil {
		return nil, err
	}
	return scaled.Recenter(policy), nil
}

// mapPositions returns a new Mesh with f applied to every position. Indices are shared.
func (m *Mesh) mapPositions(f func(math.Vec3) math.Vec3) *Mesh {
	vertices := make([]Vertex, len(m.vertices))
	for i, v := range m.vertices {
		v.Position = f(v.Position)
		vertices[i] = v
	}
	return &Mesh{vertices: vertices, indices: m.indices}
}

func boundsOf(positions []math.Vec3) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: math.Splat3(float32(gomath.Inf(1))),
		Max: math.Splat3(float32(gomath.Inf(-1))),
	}
	for _, p := range positions {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}
