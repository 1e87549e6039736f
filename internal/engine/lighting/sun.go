package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts longitude/latitude angles in degrees to a unit vector pointing towards the sun.
// Longitude is rotation around the Y axis (0-360), latitude is elevation from the horizon (0-90).
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	lonRad := float64(longitude) * math.Pi / 180
	latRad := float64(latitude) * math.Pi / 180

	x := float32(math.Cos(latRad) * math.Sin(lonRad))
	y := float32(math.Sin(latRad))
	z := float32(math.Cos(latRad) * math.Cos(lonRad))

	return mgl32.Vec3{x, y, z}
}

// NewSun creates a directional light shining from the sun position towards the origin.
func NewSun(longitude, latitude float32, diffuse, specular, ambient Color) Light {
	return NewDirectional(SunDirection(longitude, latitude).Mul(-1), diffuse, specular, ambient)
}
