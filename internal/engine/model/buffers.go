package model

import (
	"encoding/binary"
	gomath "math"
)

// VertexStride is the size in bytes of one interleaved vertex:
// position (3×f32), normal (3×f32), texcoord (2×f32).
const VertexStride = 32

// MarshalVertices serializes the vertex list into an interleaved little-endian buffer.
func (m *Mesh) MarshalVertices() []byte {
	buf := make([]byte, len(m.vertices)*VertexStride)
	for i, v := range m.vertices {
		off := i * VertexStride
		pos, normal, uv := v.Position.Array(), v.Normal.Array(), v.TexCoord.Array()
		floats := make([]float32, 0, VertexStride/4)
		floats = append(floats, pos[:]...)
		floats = append(floats, normal[:]...)
		floats = append(floats, uv[:]...)
		for j, f := range floats {
			binary.LittleEndian.PutUint32(buf[off+j*4:], gomath.Float32bits(f))
		}
	}
	return buf
}

// MarshalIndices serializes the index list as little-endian uint32.
func (m *Mesh) MarshalIndices() []byte {
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
