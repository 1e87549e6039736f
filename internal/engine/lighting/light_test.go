package lighting

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLight_RecordVariants(t *testing.T) {
	tests := []struct {
		name  string
		light Light
		want  LightRecord
	}{
		{
			name:  "directional",
			light: NewDirectional(mgl32.Vec3{0, -1, 0}, White(), Black(), Black()),
			want: LightRecord{
				DiffuseColor:  [4]float32{1, 1, 1, 1},
				AmbientColor:  [4]float32{0, 0, 0, 1},
				SpecularColor: [4]float32{0, 0, 0, 1},
				Position:      [4]float32{0, 0, 0, 1},
				Direction:     [4]float32{0, -1, 0, 0},
				LightType:     0,
			},
		},
		{
			name:  "point",
			light: NewPoint(mgl32.Vec3{1, 2, 3}, Red(), Green(), Blue()),
			want: LightRecord{
				DiffuseColor:  [4]float32{1, 0, 0, 1},
				AmbientColor:  [4]float32{0, 0, 1, 1},
				SpecularColor: [4]float32{0, 1, 0, 1},
				Position:      [4]float32{1, 2, 3, 1},
				LightType:     1,
			},
		},
		{
			name: "spot",
			light: NewSpot(Spot{
				Position:    mgl32.Vec3{0, 5, 0},
				Direction:   mgl32.Vec3{0, -1, 0},
				InnerRadius: 0.2,
				OuterRadius: 0.4,
				Falloff:     2,
			}, White(), White(), Black()),
			want: LightRecord{
				DiffuseColor:     [4]float32{1, 1, 1, 1},
				AmbientColor:     [4]float32{0, 0, 0, 1},
				SpecularColor:    [4]float32{1, 1, 1, 1},
				Position:         [4]float32{0, 5, 0, 1},
				Direction:        [4]float32{0, -1, 0, 0},
				LightType:        2,
				SpotlightOuter:   0.4,
				SpotlightInner:   0.2,
				SpotlightFalloff: 2,
			},
		},
		{
			name:  "no source",
			light: Light{Diffuse: White()},
			want: LightRecord{
				DiffuseColor: [4]float32{1, 1, 1, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.light.Record(); got != tt.want {
				t.Errorf("Record() = %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func pointLights(n int) []Light {
	lights := make([]Light, n)
	for i := range lights {
		lights[i] = NewPoint(mgl32.Vec3{float32(i), 0, 0}, White(), White(), Black())
	}
	return lights
}

func TestPackLights_Truncation(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantCount int32
	}{
		{"empty", 0, 0},
		{"one", 1, 1},
		{"full", MaxLights, MaxLights},
		{"overflow", MaxLights + 5, MaxLights},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PackLights(pointLights(tt.count))

			if p.Meta.Count != tt.wantCount {
				t.Errorf("Meta.Count = %d, want %d", p.Meta.Count, tt.wantCount)
			}
			if len(p.Active()) != int(tt.wantCount) {
				t.Errorf("len(Active()) = %d, want %d", len(p.Active()), tt.wantCount)
			}
			for i := 0; i < MaxLights; i++ {
				rec := p.Records[i]
				if i < int(tt.wantCount) {
					if rec.Position[0] != float32(i) || rec.LightType != int32(LightPoint) {
						t.Errorf("record %d does not match input light %d: %+v", i, i, rec)
					}
				} else if rec != (LightRecord{}) {
					t.Errorf("unused record %d not zeroed: %+v", i, rec)
				}
			}
		})
	}
}

func TestLightBuffer_AddLight(t *testing.T) {
	b := NewLightBuffer()
	for i := 0; i < MaxLights; i++ {
		if !b.AddLight(pointLights(1)[0]) {
			t.Fatalf("AddLight %d rejected before buffer full", i)
		}
	}
	if b.AddLight(pointLights(1)[0]) {
		t.Error("AddLight accepted past MaxLights")
	}
	if b.Count() != MaxLights {
		t.Errorf("Count() = %d, want %d", b.Count(), MaxLights)
	}

	b.Clear()
	if b.Count() != 0 || b.Payload().Meta.Count != 0 {
		t.Error("Clear did not empty the buffer")
	}
}

func TestLightPayload_Marshal(t *testing.T) {
	p := PackLights(pointLights(MaxLights + 1))
	data := p.Marshal()

	if len(data) != LightMetaSize+MaxLights*LightRecordSize {
		t.Fatalf("payload size = %d", len(data))
	}
	if count := int32(binary.LittleEndian.Uint32(data[0:4])); count != MaxLights {
		t.Errorf("count = %d, want %d", count, MaxLights)
	}

	// Last record's position.x sits at meta + 7 records + 48.
	off := LightMetaSize + (MaxLights-1)*LightRecordSize + 48
	if x := math.Float32frombits(binary.LittleEndian.Uint32(data[off:])); x != float32(MaxLights-1) {
		t.Errorf("last record position.x = %v, want %d", x, MaxLights-1)
	}
}

func TestLightRecord_Layout(t *testing.T) {
	var r LightRecord
	if r.Size() != LightRecordSize {
		t.Errorf("LightRecord size = %d, want %d", r.Size(), LightRecordSize)
	}
	var m LightMeta
	if m.Size() != LightMetaSize {
		t.Errorf("LightMeta size = %d, want %d", m.Size(), LightMetaSize)
	}

	r = NewSpot(Spot{OuterRadius: 0.5, InnerRadius: 0.25, Falloff: 3}, White(), White(), White()).Record()
	data := r.Marshal()

	if lt := binary.LittleEndian.Uint32(data[80:84]); lt != 2 {
		t.Errorf("light type = %d, want 2", lt)
	}
	fields := []struct {
		off  int
		want float32
	}{
		{84, 0.5},
		{88, 0.25},
		{92, 3},
	}
	for _, f := range fields {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(data[f.off:])); got != f.want {
			t.Errorf("offset %d = %v, want %v", f.off, got, f.want)
		}
	}
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     mgl32.Vec3
	}{
		{"zenith", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"horizon south", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"horizon east", 90, 0, mgl32.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SunDirection(tt.lon, tt.lat); !vec3Near(got, tt.want, 1e-6) {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}

	sun := NewSun(0, 90, White(), White(), Black()).Record()
	if sun.LightType != int32(LightDirectional) || math.Abs(float64(sun.Direction[1]+1)) > 1e-5 {
		t.Errorf("sun record = %+v, want downward directional", sun)
	}
}

// vec3Near compares components with an absolute tolerance, so values that should be zero pass.
func vec3Near(a, b mgl32.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestSunDirection_AxisAligned(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		axis     int
	}{
		{"zenith", 0, 90, 1},
		{"east", 90, 0, 0},
		{"south", 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			for i := range got {
				if i == tt.axis {
					continue
				}
				if math.Abs(float64(got[i])) > 1e-7 {
					t.Errorf("component %d = %v, want ~0", i, got[i])
				}
			}
			if math.Abs(float64(got.Len()-1)) > 1e-6 {
				t.Errorf("length = %v, want 1", got.Len())
			}
		})
	}
}
