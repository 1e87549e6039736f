// Package model assembles parsed mesh pools into indexed meshes and normalizes them.
package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshkit/pkg/formats"
	"github.com/Faultbox/meshkit/pkg/math"
)

// Mesh errors.
var (
	ErrIndex              = formats.ErrIndex
	ErrEmptyMesh          = errors.New("mesh has no faces")
	ErrDegenerateGeometry = errors.New("degenerate mesh geometry")
)

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Mesh holds an indexed triangle mesh ready for GPU upload.
// A Mesh is never modified after construction; processing returns a new Mesh.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
}

// Vertices returns the compact vertex list. Callers must not modify it.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the triangle index list, three entries per triangle. Callers must not modify it.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// VertexCount returns the number of compact vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the absolute extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min).Abs()
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// MaxExtent returns the length of the longest axis.
func (b Bounds) MaxExtent() float32 {
	return b.Size().MaxComponent()
}

// CenterPolicy selects the reference point that Recenter moves to the origin.
type CenterPolicy int

const (
	CenterCentroid CenterPolicy = iota // Mean of vertex positions
	CenterBounds                       // Midpoint of the extents
)

// String returns the config name of the policy.
func (p CenterPolicy) String() string {
	switch p {
	case CenterCentroid:
		return "centroid"
	case CenterBounds:
		return "bounds"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseCenterPolicy converts a config name to a CenterPolicy.
func ParseCenterPolicy(s string) (CenterPolicy, error) {
	switch s {
	case "", "centroid":
		return CenterCentroid, nil
	case "bounds":
		return CenterBounds, nil
	default:
		return CenterCentroid, fmt.Errorf("unknown center policy %q", s)
	}
}

// BuildOptions contains options for mesh assembly.
type BuildOptions struct {
	// Mode selects which channels come from the pools and which are synthesized.
	Mode formats.SynthesisMode
	// UVMapping generates texture coordinates when Mode does not read them.
	UVMapping UVMapping
}

// IndexError reports a face corner referencing an attribute outside its pool.
type IndexError struct {
	Channel string // "position", "uv" or "normal"
	Face    int    // 0-based face number
	Index   int32  // 0-based index as parsed
	Len     int    // Pool length
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("face %d: %s index %d out of range (pool has %d entries)",
		e.Face+1, e.Channel, int64(e.Index)+1, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndex
}
