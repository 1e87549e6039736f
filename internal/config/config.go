// Package config handles meshkit configuration loading and management.
package config

import (
	"github.com/Faultbox/meshkit/internal/engine/lighting"
	"github.com/go-gl/mathgl/mgl32"
)

// Config holds all meshkit settings.
type Config struct {
	Load     LoadConfig     `yaml:"load" toml:"load"`
	Lighting LightingConfig `yaml:"lighting" toml:"lighting"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// LoadConfig holds mesh loading and processing settings.
type LoadConfig struct {
	Synthesize string `yaml:"synthesize" toml:"synthesize"` // none, uv, normals, both
	UVMapping  string `yaml:"uv_mapping" toml:"uv_mapping"` // zero, planar, spherical
	Center     string `yaml:"center" toml:"center"`         // centroid, bounds
	Encoding   string `yaml:"encoding" toml:"encoding"`     // Text encoding label, e.g. utf-8, windows-1252
	Normalize  bool   `yaml:"normalize" toml:"normalize"`   // Scale to unit size and recenter
}

// LightingConfig holds the lights and material packed for upload.
type LightingConfig struct {
	Sun      SunConfig      `yaml:"sun" toml:"sun"`
	Lights   []LightConfig  `yaml:"lights" toml:"lights"`
	Material MaterialConfig `yaml:"material" toml:"material"`
}

// SunConfig describes an optional directional light placed by angles.
type SunConfig struct {
	Enabled   bool           `yaml:"enabled" toml:"enabled"`
	Longitude float32        `yaml:"longitude" toml:"longitude"`
	Latitude  float32        `yaml:"latitude" toml:"latitude"`
	Diffuse   lighting.Color `yaml:"diffuse" toml:"diffuse"`
	Specular  lighting.Color `yaml:"specular" toml:"specular"`
	Ambient   lighting.Color `yaml:"ambient" toml:"ambient"`
}

// LightConfig describes one light. Fields not used by Type are ignored.
type LightConfig struct {
	Type      string         `yaml:"type" toml:"type"` // directional, point, spot
	Position  mgl32.Vec3     `yaml:"position" toml:"position"`
	Direction mgl32.Vec3     `yaml:"direction" toml:"direction"`
	Inner     float32        `yaml:"inner" toml:"inner"`
	Outer     float32        `yaml:"outer" toml:"outer"`
	Falloff   float32        `yaml:"falloff" toml:"falloff"`
	Diffuse   lighting.Color `yaml:"diffuse" toml:"diffuse"`
	Specular  lighting.Color `yaml:"specular" toml:"specular"`
	Ambient   lighting.Color `yaml:"ambient" toml:"ambient"`
}

// MaterialConfig describes the material. Setting either texture selects a textured material.
type MaterialConfig struct {
	Diffuse         lighting.Color `yaml:"diffuse" toml:"diffuse"`
	Ambient         lighting.Color `yaml:"ambient" toml:"ambient"`
	Specular        lighting.Color `yaml:"specular" toml:"specular"`
	SpecularPower   float32        `yaml:"specular_power" toml:"specular_power"`
	DiffuseTexture  string         `yaml:"diffuse_texture" toml:"diffuse_texture"`
	SpecularTexture string         `yaml:"specular_texture" toml:"specular_texture"`
}

// OutputConfig holds where converted buffers are written.
type OutputConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Load: LoadConfig{
			Synthesize: "none",
			UVMapping:  "zero",
			Center:     "centroid",
			Encoding:   "utf-8",
			Normalize:  true,
		},
		Lighting: LightingConfig{
			Lights: []LightConfig{
				{
					Type:      "directional",
					Direction: mgl32.Vec3{0, -1, 0},
					Diffuse:   lighting.White(),
					Specular:  lighting.White(),
					Ambient:   lighting.Black(),
				},
			},
			Material: MaterialConfig{
				Diffuse:       lighting.Gray(),
				Ambient:       lighting.Black(),
				Specular:      lighting.White(),
				SpecularPower: 32,
			},
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
