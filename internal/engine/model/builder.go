package model

import (
	"github.com/Faultbox/meshkit/pkg/formats"
	"github.com/Faultbox/meshkit/pkg/math"
)

// Builder accumulates attribute pools and faces and yields an immutable Mesh.
// Pools are handed to the Mesh on Build; the Builder is empty afterwards.
type Builder struct {
	opts      BuildOptions
	positions []math.Vec3
	normals   []math.Vec3
	uvs       []math.Vec2
	faces     [][3]formats.IndexTriple
}

// NewBuilder creates an empty builder.
func NewBuilder(opts BuildOptions) *Builder {
	return &Builder{opts: opts}
}

// AddPositions appends to the position pool.
func (b *Builder) AddPositions(p ...math.Vec3) *Builder {
	b.positions = append(b.positions, p...)
	return b
}

// AddNormals appends to the normal pool.
func (b *Builder) AddNormals(n ...math.Vec3) *Builder {
	b.normals = append(b.normals, n...)
	return b
}

// AddUVs appends to the texture coordinate pool.
func (b *Builder) AddUVs(uv ...math.Vec2) *Builder {
	b.uvs = append(b.uvs, uv...)
	return b
}

// AddFace appends one triangle given by three raw index triples.
func (b *Builder) AddFace(face [3]formats.IndexTriple) *Builder {
	b.faces = append(b.faces, face)
	return b
}

// Build validates every reference, deduplicates corners and resolves the compact vertex list.
// Nothing is returned on error.
func (b *Builder) Build() (*Mesh, error) {
	defer b.reset()

	if len(b.faces) == 0 {
		return nil, ErrEmptyMesh
	}

	keys, indices, err := b.deduplicate()
	if err != nil {
		return nil, err
	}

	vertices := make([]Vertex, len(keys))
	for i, key := range keys {
		vertices[i].Position = b.positions[key.Position]
		if b.opts.Mode.ReadsNormals() {
			vertices[i].Normal = b.normals[key.Normal]
		}
		if b.opts.Mode.ReadsUV() {
			vertices[i].TexCoord = b.uvs[key.UV]
		}
	}

	if !b.opts.Mode.ReadsUV() {
		positions := make([]math.Vec3, len(vertices))
		for i := range vertices {
			positions[i] = vertices[i].Position
		}
		for i, uv := range SynthesizeUV(b.opts.UVMapping, positions) {
			vertices[i].TexCoord = uv
		}
	}

	if !b.opts.Mode.ReadsNormals() {
		for i, n := range synthesizeNormals(vertices, indices) {
			vertices[i].Normal = n
		}
	}

	return &Mesh{vertices: vertices, indices: indices}, nil
}

// deduplicate assigns compact indices to distinct corners in first-seen order.
func (b *Builder) deduplicate() ([]formats.IndexTriple, []uint32, error) {
	registry := make(map[formats.IndexTriple]uint32, len(b.faces)*3)
	keys := make([]formats.IndexTriple, 0, len(b.faces))
	indices := make([]uint32, 0, len(b.faces)*3)

	for fi, face := range b.faces {
		for _, corner := range face {
			if err := b.checkCorner(fi, corner); err != nil {
				return nil, nil, err
			}

			idx, ok := registry[corner]
			if !ok {
				idx = uint32(len(keys))
				registry[corner] = idx
				keys = append(keys, corner)
			}
			indices = append(indices, idx)
		}
	}

	return keys, indices, nil
}

// checkCorner bounds-checks the channels this build reads.
func (b *Builder) checkCorner(face int, c formats.IndexTriple) error {
	if !inRange(c.Position, len(b.positions)) {
		return &IndexError{Channel: "position", Face: face, Index: c.Position, Len: len(b.positions)}
	}
	if b.opts.Mode.ReadsUV() && !inRange(c.UV, len(b.uvs)) {
		return &IndexError{Channel: "uv", Face: face, Index: c.UV, Len: len(b.uvs)}
	}
	if b.opts.Mode.ReadsNormals() && !inRange(c.Normal, len(b.normals)) {
		return &IndexError{Channel: "normal", Face: face, Index: c.Normal, Len: len(b.normals)}
	}
	return nil
}

func (b *Builder) reset() {
	b.positions = nil
	b.normals = nil
	b.uvs = nil
	b.faces = nil
}

func inRange(idx int32, n int) bool {
	return idx >= 0 && int(idx) < n
}
