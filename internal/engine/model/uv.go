package model

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/meshkit/pkg/math"
)

// UVMapping selects how texture coordinates are generated when the input has none.
type UVMapping int

const (
	UVZero      UVMapping = iota // All coordinates (0, 0)
	UVPlanarXY                   // Project onto the XY plane, fit to [0, 1]
	UVSpherical                  // Longitude/latitude around the bounds center
)

// String returns the config name of the mapping.
func (u UVMapping) String() string {
	switch u {
	case UVZero:
		return "zero"
	case UVPlanarXY:
		return "planar"
	case UVSpherical:
		return "spherical"
	default:
		return "unknown"
	}
}

// ParseUVMapping converts a config name to a UVMapping.
func ParseUVMapping(s string) (UVMapping, error) {
	switch s {
	case "", "zero":
		return UVZero, nil
	case "planar":
		return UVPlanarXY, nil
	case "spherical":
		return UVSpherical, nil
	default:
		return UVZero, fmt.Errorf("unknown uv mapping %q", s)
	}
}

// SynthesizeUV generates one texture coordinate per position.
// Both non-zero mappings are invariant to uniform scaling and translation of the input.
func SynthesizeUV(mapping UVMapping, positions []math.Vec3) []math.Vec2 {
	uvs := make([]math.Vec2, len(positions))
	if len(positions) == 0 || mapping == UVZero {
		return uvs
	}

	b := boundsOf(positions)
	size := b.Size()

	switch mapping {
	case UVPlanarXY:
		for i, p := range positions {
			uvs[i] = math.Vec2{
				X: unitRange(p.X-b.Min.X, size.X),
				Y: unitRange(p.Y-b.Min.Y, size.Y),
			}
		}
	case UVSpherical:
		center := b.Center()
		for i, p := range positions {
			d := p.Sub(center).Normalize()
			u := 0.5 + gomath.Atan2(float64(d.Z), float64(d.X))/(2*gomath.Pi)
			v := 0.5 - gomath.Asin(float64(d.Y))/gomath.Pi
			uvs[i] = math.Vec2{X: float32(u), Y: float32(v)}
		}
	}
	return uvs
}

func unitRange(offset, extent float32) float32 {
	if extent == 0 {
		return 0
	}
	return offset / extent
}
