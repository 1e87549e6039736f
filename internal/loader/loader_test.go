package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/engine/model"
	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/Faultbox/meshkit/pkg/formats"
	"github.com/Faultbox/meshkit/pkg/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const quadOBJ = "v 0 0 0\nv 2 0 0\nv 2 2 0\nv 0 2 0\ng quad\nf 1 2 3\nf 1 3 4\n"

// observeLogs routes the global logger into an observer for the duration of the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestOptionsFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoadConfig
		want    Options
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  config.Default().Load,
			want: Options{Mode: formats.SynthesizeNone, UVMapping: model.UVZero, Center: model.CenterCentroid, Normalize: true, Encoding: "utf-8"},
		},
		{
			name: "explicit",
			cfg:  config.LoadConfig{Synthesize: "both", UVMapping: "spherical", Center: "bounds", Encoding: "latin1"},
			want: Options{Mode: formats.SynthesizeBoth, UVMapping: model.UVSpherical, Center: model.CenterBounds, Encoding: "windows-1252"},
		},
		{name: "bad mode", cfg: config.LoadConfig{Synthesize: "all"}, wantErr: true},
		{name: "bad mapping", cfg: config.LoadConfig{UVMapping: "cubic"}, wantErr: true},
		{name: "bad center", cfg: config.LoadConfig{Center: "median"}, wantErr: true},
		{name: "bad encoding", cfg: config.LoadConfig{Encoding: "klingon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptionsFromConfig(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("OptionsFromConfig failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadBytes(t *testing.T) {
	logs := observeLogs(t)

	res, err := LoadBytes("quad.obj", []byte(quadOBJ), Options{Mode: formats.SynthesizeBoth, Normalize: true})
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	if res.Mesh.VertexCount() != 4 || res.Mesh.TriangleCount() != 2 {
		t.Errorf("got %d vertices, %d triangles", res.Mesh.VertexCount(), res.Mesh.TriangleCount())
	}
	if res.Positions != 4 || res.Normals != 0 || res.UVs != 0 {
		t.Errorf("unexpected pool sizes: %+v", res)
	}

	// Normalized to unit extent around the centroid.
	b := res.Mesh.Extents()
	if !b.Min.ApproxEqual(math.Vec3{X: -0.5, Y: -0.5, Z: 0}, 1e-6) || !b.Max.ApproxEqual(math.Vec3{X: 0.5, Y: 0.5, Z: 0}, 1e-6) {
		t.Errorf("unexpected bounds: %+v", b)
	}

	warnings := logs.FilterMessage("skipped unrecognized line").All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 skipped-line warning, got %d", len(warnings))
	}
	if warnings[0].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", warnings[0].Level)
	}
	fields := warnings[0].ContextMap()
	if fields["line"] != int64(5) || fields["text"] != "g quad" || fields["mesh"] != "quad.obj" {
		t.Errorf("unexpected warning fields: %v", fields)
	}

	if logs.FilterMessage("mesh loaded").Len() != 1 {
		t.Error("expected a debug load summary")
	}
}

func TestLoadBytesRaw(t *testing.T) {
	observeLogs(t)

	res, err := LoadBytes("quad.obj", []byte(quadOBJ), Options{Mode: formats.SynthesizeBoth})
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}
	if got := res.Mesh.Extents().Max; got != (math.Vec3{X: 2, Y: 2, Z: 0}) {
		t.Errorf("expected untouched positions, max = %v", got)
	}
}

func TestLoadBytesErrors(t *testing.T) {
	observeLogs(t)

	tests := []struct {
		name    string
		src     string
		opts    Options
		wantErr error
	}{
		{"format", "v 0 0 zero", Options{Mode: formats.SynthesizeBoth}, formats.ErrFormat},
		{"index", "v 0 0 0\nf 1 2 3", Options{Mode: formats.SynthesizeBoth}, model.ErrIndex},
		{"empty", "v 0 0 0", Options{Mode: formats.SynthesizeBoth}, model.ErrEmptyMesh},
		{"degenerate", "v 1 1 1\nf 1 1 1", Options{Mode: formats.SynthesizeBoth, Normalize: true}, model.ErrDegenerateGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := LoadBytes(tt.name, []byte(tt.src), tt.opts)
			if res != nil {
				t.Error("expected no result on failure")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	observeLogs(t)
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.obj"), Options{}); !errors.Is(err, formats.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}

	path := writeFile(t, dir, "quad.obj", quadOBJ)
	res, err := LoadFile(path, Options{Mode: formats.SynthesizeBoth})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if res.Path != path {
		t.Errorf("expected path %s, got %s", path, res.Path)
	}
}

func TestCache(t *testing.T) {
	observeLogs(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "quad.obj", quadOBJ)

	c := NewCache(Options{Mode: formats.SynthesizeBoth})

	first, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if first != second {
		t.Error("expected cached result on unchanged file")
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	// Rewrite with a different size and a later mtime.
	writeFile(t, dir, "quad.obj", quadOBJ+"v 9 9 9\n")
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	third, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if third == first || third.Positions != 5 {
		t.Errorf("expected reload after change, got %d positions", third.Positions)
	}

	// A broken file evicts the entry.
	writeFile(t, dir, "quad.obj", "f 1 1")
	if _, err := c.Load(path); !errors.Is(err, formats.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected entry to be evicted, cache has %d", c.Len())
	}

	if _, err := c.Load(filepath.Join(dir, "missing.obj")); !errors.Is(err, formats.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}

	c.Clear()
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("expected stats reset, got %d/%d", hits, misses)
	}
}
