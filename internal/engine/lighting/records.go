package lighting

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Record sizes in bytes (std140 compatible, 16-byte aligned).
const (
	LightMetaSize      = 16
	LightRecordSize    = 96
	MaterialRecordSize = 64
)

// LightMeta tells the shader how many entries of the light array are active.
// Size: 16 bytes (int32 + padding to a vec4 slot).
type LightMeta struct {
	Count int32    // offset 0: min(active lights, MaxLights)
	_pad  [3]int32 // offset 4: padding
}

// Size returns the size of the LightMeta struct in bytes.
func (m *LightMeta) Size() int {
	return int(unsafe.Sizeof(*m))
}

// Marshal serializes the LightMeta struct into a byte buffer suitable for GPU upload.
func (m *LightMeta) Marshal() []byte {
	buf := make([]byte, LightMetaSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(m.Count))
	return buf
}

// LightRecord is the GPU representation of a single light.
// Size: 96 bytes.
type LightRecord struct {
	DiffuseColor     [4]float32 // offset  0: RGBA
	AmbientColor     [4]float32 // offset 16: RGBA
	SpecularColor    [4]float32 // offset 32: RGBA
	Position         [4]float32 // offset 48: point/spot position (w=1); (0,0,0,1) for directional
	Direction        [4]float32 // offset 64: directional/spot direction (w=0); zero for point
	LightType        int32      // offset 80: 0 = directional, 1 = point, 2 = spot
	SpotlightOuter   float32    // offset 84: spot outer radius
	SpotlightInner   float32    // offset 88: spot inner radius
	SpotlightFalloff float32    // offset 92: spot falloff exponent
}

// Size returns the size of the LightRecord struct in bytes.
func (r *LightRecord) Size() int {
	return int(unsafe.Sizeof(*r))
}

// Marshal serializes the LightRecord struct into a byte buffer suitable for GPU upload.
func (r *LightRecord) Marshal() []byte {
	buf := make([]byte, LightRecordSize)
	r.marshalTo(buf)
	return buf
}

func (r *LightRecord) marshalTo(buf []byte) {
	putVec4(buf[0:16], r.DiffuseColor)
	putVec4(buf[16:32], r.AmbientColor)
	putVec4(buf[32:48], r.SpecularColor)
	putVec4(buf[48:64], r.Position)
	putVec4(buf[64:80], r.Direction)
	binary.LittleEndian.PutUint32(buf[80:84], uint32(r.LightType))
	binary.LittleEndian.PutUint32(buf[84:88], math.Float32bits(r.SpotlightOuter))
	binary.LittleEndian.PutUint32(buf[88:92], math.Float32bits(r.SpotlightInner))
	binary.LittleEndian.PutUint32(buf[92:96], math.Float32bits(r.SpotlightFalloff))
}

// LightPayload is everything uploaded for lighting: metadata plus exactly MaxLights records.
type LightPayload struct {
	Meta    LightMeta
	Records [MaxLights]LightRecord
}

// Active returns the records that are in use.
func (p *LightPayload) Active() []LightRecord {
	return p.Records[:p.Meta.Count]
}

// Marshal serializes the metadata followed by all MaxLights records.
func (p *LightPayload) Marshal() []byte {
	buf := make([]byte, LightMetaSize+MaxLights*LightRecordSize)
	copy(buf, p.Meta.Marshal())
	for i := range p.Records {
		off := LightMetaSize + i*LightRecordSize
		p.Records[i].marshalTo(buf[off : off+LightRecordSize])
	}
	return buf
}

// MaterialRecord is the GPU representation of a material.
// Size: 64 bytes.
type MaterialRecord struct {
	DiffuseColor       [4]float32 // offset  0: RGBA
	AmbientColor       [4]float32 // offset 16: RGBA
	SpecularColor      [4]float32 // offset 32: RGBA
	SpecularPower      float32    // offset 48: shininess exponent
	UseDiffuseTexture  int32      // offset 52: 1 = sample diffuse texture
	UseSpecularTexture int32      // offset 56: 1 = sample specular texture
	_pad               int32      // offset 60: padding to 64 bytes
}

// Size returns the size of the MaterialRecord struct in bytes.
func (r *MaterialRecord) Size() int {
	return int(unsafe.Sizeof(*r))
}

// Marshal serializes the MaterialRecord struct into a byte buffer suitable for GPU upload.
func (r *MaterialRecord) Marshal() []byte {
	buf := make([]byte, MaterialRecordSize)
	putVec4(buf[0:16], r.DiffuseColor)
	putVec4(buf[16:32], r.AmbientColor)
	putVec4(buf[32:48], r.SpecularColor)
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(r.SpecularPower))
	binary.LittleEndian.PutUint32(buf[52:56], uint32(r.UseDiffuseTexture))
	binary.LittleEndian.PutUint32(buf[56:60], uint32(r.UseSpecularTexture))
	return buf
}

func putVec4(buf []byte, v [4]float32) {
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}
