package model

import (
	"github.com/Faultbox/meshkit/pkg/formats"
)

// Assemble resolves a parsed OBJ into a Mesh. opts.Mode is taken from the OBJ
// so that face indices are interpreted the way they were parsed.
func Assemble(obj *formats.OBJ, opts BuildOptions) (*Mesh, error) {
	opts.Mode = obj.Mode

	b := NewBuilder(opts).
		AddPositions(obj.Positions...).
		AddNormals(obj.Normals...).
		AddUVs(obj.UVs...)
	for _, face := range obj.Faces {
		b.AddFace(face)
	}
	return b.Build()
}
