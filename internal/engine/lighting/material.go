package lighting

// Material describes surface response: Untextured or Textured.
type Material interface {
	Record() MaterialRecord
}

// Untextured is a material with inline color constants.
type Untextured struct {
	Diffuse       Color
	Ambient       Color
	Specular      Color
	SpecularPower float32
}

// Textured samples diffuse/specular color from textures. Texture refs are opaque to this package.
type Textured struct {
	Ambient         Color
	DiffuseTexture  string
	SpecularTexture string
}

// Record converts the material to its GPU layout.
func (m Untextured) Record() MaterialRecord {
	return MaterialRecord{
		DiffuseColor:  m.Diffuse.Floats(),
		AmbientColor:  m.Ambient.Floats(),
		SpecularColor: m.Specular.Floats(),
		SpecularPower: m.SpecularPower,
	}
}

// Record converts the material to its GPU layout.
// Diffuse and specular colors are zero; the shader reads them from the textures that are set.
func (m Textured) Record() MaterialRecord {
	return MaterialRecord{
		AmbientColor:       m.Ambient.Floats(),
		UseDiffuseTexture:  boolInt(m.DiffuseTexture != ""),
		UseSpecularTexture: boolInt(m.SpecularTexture != ""),
	}
}

// MaterialRecordOf returns the record for m. A nil material yields a zero record.
func MaterialRecordOf(m Material) MaterialRecord {
	if m == nil {
		return MaterialRecord{}
	}
	return m.Record()
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
