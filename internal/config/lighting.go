package config

import (
	"fmt"

	"github.com/Faultbox/meshkit/internal/engine/lighting"
)

// BuildLights converts the configured sun and lights, sun first.
func (c LightingConfig) BuildLights() ([]lighting.Light, error) {
	var lights []lighting.Light

	if c.Sun.Enabled {
		lights = append(lights, lighting.NewSun(c.Sun.Longitude, c.Sun.Latitude,
			c.Sun.Diffuse, c.Sun.Specular, c.Sun.Ambient))
	}

	for i, lc := range c.Lights {
		switch lc.Type {
		case "directional":
			lights = append(lights, lighting.NewDirectional(lc.Direction, lc.Diffuse, lc.Specular, lc.Ambient))
		case "point":
			lights = append(lights, lighting.NewPoint(lc.Position, lc.Diffuse, lc.Specular, lc.Ambient))
		case "spot":
			lights = append(lights, lighting.NewSpot(lighting.Spot{
				Position:    lc.Position,
				Direction:   lc.Direction,
				InnerRadius: lc.Inner,
				OuterRadius: lc.Outer,
				Falloff:     lc.Falloff,
			}, lc.Diffuse, lc.Specular, lc.Ambient))
		default:
			return nil, fmt.Errorf("light %d: unknown type %q", i, lc.Type)
		}
	}

	return lights, nil
}

// Build converts the material config to a Textured or Untextured material.
func (c MaterialConfig) Build() lighting.Material {
	if c.DiffuseTexture != "" || c.SpecularTexture != "" {
		return lighting.Textured{
			Ambient:         c.Ambient,
			DiffuseTexture:  c.DiffuseTexture,
			SpecularTexture: c.SpecularTexture,
		}
	}
	return lighting.Untextured{
		Diffuse:       c.Diffuse,
		Ambient:       c.Ambient,
		Specular:      c.Specular,
		SpecularPower: c.SpecularPower,
	}
}
