package model

import (
	"github.com/Faultbox/meshkit/pkg/math"
)

// WithSynthesizedNormals returns a copy of m whose normals are rebuilt from face geometry.
func (m *Mesh) WithSynthesizedNormals() *Mesh {
	vertices := make([]Vertex, len(m.vertices))
	copy(vertices, m.vertices)
	for i, n := range synthesizeNormals(vertices, m.indices) {
		vertices[i].Normal = n
	}
	return &Mesh{vertices: vertices, indices: m.indices}
}

// synthesizeNormals averages the distinct face normals touching each vertex.
// An identical face normal is counted once per vertex, so duplicate triangles do not bias the result.
// Zero-area triangles contribute nothing; a vertex with no usable face keeps a zero normal.
func synthesizeNormals(vertices []Vertex, indices []uint32) []math.Vec3 {
	faceNormals := make([][]math.Vec3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		p0 := vertices[indices[i]].Position
		p1 := vertices[indices[i+1]].Position
		p2 := vertices[indices[i+2]].Position

		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		if n == (math.Vec3{}) {
			continue
		}

		for j := 0; j < 3; j++ {
			vi := indices[i+j]
			if !containsVec3(faceNormals[vi], n) {
				faceNormals[vi] = append(faceNormals[vi], n)
			}
		}
	}

	normals := make([]math.Vec3, len(vertices))
	for i, set := range faceNormals {
		var sum math.Vec3
		for _, n := range set {
			sum = sum.Add(n)
		}
		normals[i] = sum.Normalize()
	}
	return normals
}

func containsVec3(set []math.Vec3, v math.Vec3) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
