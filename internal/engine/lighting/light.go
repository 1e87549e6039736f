// Package lighting converts light and material descriptions into fixed-layout GPU records.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots the shader's light array declares.
const MaxLights = 8

// LightType is the discriminant stored in LightRecord.LightType.
type LightType int32

const (
	LightDirectional LightType = 0
	LightPoint       LightType = 1
	LightSpot        LightType = 2
)

// String returns a human-readable light type name.
func (t LightType) String() string {
	switch t {
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// Source is the geometric part of a light: Directional, Point or Spot.
type Source interface {
	Type() LightType
	fill(r *LightRecord)
}

// Directional is a light infinitely far away shining along Direction.
type Directional struct {
	Direction mgl32.Vec3
}

// Point is an omnidirectional light at Position.
type Point struct {
	Position mgl32.Vec3
}

// Spot is a cone light at Position shining along Direction.
type Spot struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	InnerRadius float32
	OuterRadius float32
	Falloff     float32
}

func (Directional) Type() LightType { return LightDirectional }
func (Point) Type() LightType       { return LightPoint }
func (Spot) Type() LightType        { return LightSpot }

// Directional lights have no position; w=1 keeps the homogeneous convention.
func (d Directional) fill(r *LightRecord) {
	r.Position = [4]float32{0, 0, 0, 1}
	r.Direction = d.Direction.Vec4(0)
}

func (p Point) fill(r *LightRecord) {
	r.Position = p.Position.Vec4(1)
}

func (s Spot) fill(r *LightRecord) {
	r.Position = s.Position.Vec4(1)
	r.Direction = s.Direction.Vec4(0)
	r.SpotlightOuter = s.OuterRadius
	r.SpotlightInner = s.InnerRadius
	r.SpotlightFalloff = s.Falloff
}

// Light is a light source with its colors.
type Light struct {
	Source   Source
	Diffuse  Color
	Specular Color
	Ambient  Color
}

// NewDirectional creates a directional light.
func NewDirectional(dir mgl32.Vec3, diffuse, specular, ambient Color) Light {
	return Light{Source: Directional{Direction: dir}, Diffuse: diffuse, Specular: specular, Ambient: ambient}
}

// NewPoint creates a point light.
func NewPoint(pos mgl32.Vec3, diffuse, specular, ambient Color) Light {
	return Light{Source: Point{Position: pos}, Diffuse: diffuse, Specular: specular, Ambient: ambient}
}

// NewSpot creates a spot light.
func NewSpot(spot Spot, diffuse, specular, ambient Color) Light {
	return Light{Source: spot, Diffuse: diffuse, Specular: specular, Ambient: ambient}
}

// Record converts the light to its GPU layout. Fields the variant does not use are zero.
// A light without a Source yields a record carrying only its colors.
func (l Light) Record() LightRecord {
	r := LightRecord{
		DiffuseColor:  l.Diffuse.Floats(),
		AmbientColor:  l.Ambient.Floats(),
		SpecularColor: l.Specular.Floats(),
	}
	if l.Source != nil {
		r.LightType = int32(l.Source.Type())
		l.Source.fill(&r)
	}
	return r
}

// LightBuffer collects up to MaxLights lights for upload.
type LightBuffer struct {
	lights []Light
}

// NewLightBuffer creates an empty light buffer.
func NewLightBuffer() *LightBuffer {
	return &LightBuffer{
		lights: make([]Light, 0, MaxLights),
	}
}

// Clear removes all lights from the buffer.
func (b *LightBuffer) Clear() {
	b.lights = b.lights[:0]
}

// Count returns the number of active lights.
func (b *LightBuffer) Count() int {
	return len(b.lights)
}

// AddLight adds a light to the buffer.
// Returns false if buffer is full.
func (b *LightBuffer) AddLight(light Light) bool {
	if len(b.lights) >= MaxLights {
		return false
	}
	b.lights = append(b.lights, light)
	return true
}

// SetLights replaces all lights in the buffer, keeping the first MaxLights in order.
func (b *LightBuffer) SetLights(lights []Light) {
	b.Clear()
	count := min(len(lights), MaxLights)
	b.lights = append(b.lights, lights[:count]...)
}

// Payload returns the metadata and the full fixed-size record array.
// Slots past Count are zeroed.
func (b *LightBuffer) Payload() LightPayload {
	var p LightPayload
	p.Meta.Count = int32(len(b.lights))
	for i, l := range b.lights {
		p.Records[i] = l.Record()
	}
	return p
}

// PackLights truncates lights to MaxLights and converts them for upload.
// Excess lights are dropped; an empty list yields Count 0.
func PackLights(lights []Light) LightPayload {
	b := NewLightBuffer()
	b.SetLights(lights)
	return b.Payload()
}
