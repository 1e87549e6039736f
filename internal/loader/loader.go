// Package loader runs the mesh load pipeline: read, parse, assemble and process.
package loader

import (
	"fmt"
	"os"
	"time"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/engine/model"
	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/Faultbox/meshkit/pkg/encoding"
	"github.com/Faultbox/meshkit/pkg/formats"
	"go.uber.org/zap"
)

// Options controls how a mesh file is turned into a Mesh.
type Options struct {
	Mode      formats.SynthesisMode
	UVMapping model.UVMapping
	Center    model.CenterPolicy
	Normalize bool   // Scale to unit extent, then recenter
	Encoding  string // Canonical text encoding name; empty means UTF-8
}

// OptionsFromConfig resolves the string settings of the load config section.
func OptionsFromConfig(cfg config.LoadConfig) (Options, error) {
	mode, err := formats.ParseSynthesisMode(cfg.Synthesize)
	if err != nil {
		return Options{}, err
	}
	mapping, err := model.ParseUVMapping(cfg.UVMapping)
	if err != nil {
		return Options{}, err
	}
	center, err := model.ParseCenterPolicy(cfg.Center)
	if err != nil {
		return Options{}, err
	}
	enc, err := encoding.CanonicalName(cfg.Encoding)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Mode:      mode,
		UVMapping: mapping,
		Center:    center,
		Normalize: cfg.Normalize,
		Encoding:  enc,
	}, nil
}

// Result is a processed mesh plus what the parser saw.
type Result struct {
	Path      string
	Mesh      *model.Mesh
	Positions int // Pool sizes as read
	Normals   int
	UVs       int
	Skipped   []formats.SkippedLine
	Elapsed   time.Duration
}

// LoadFile reads and processes the mesh at path.
func LoadFile(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", formats.ErrIO, path, err)
	}
	return LoadBytes(path, data, opts)
}

// LoadBytes processes mesh text already in memory. name is used for logging only.
func LoadBytes(name string, data []byte, opts Options) (*Result, error) {
	log := logger.Named("loader").With(zap.String("mesh", name))
	start := time.Now()

	obj, err := formats.ParseOBJEncoded(data, opts.Mode, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	for _, s := range obj.Skipped {
		log.Warn("skipped unrecognized line", zap.Int("line", s.Line), zap.String("text", s.Text))
	}

	mesh, err := model.Assemble(obj, model.BuildOptions{UVMapping: opts.UVMapping})
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", name, err)
	}

	if opts.Normalize {
		if mesh, err = mesh.Normalize(opts.Center); err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", name, err)
		}
	}

	res := &Result{
		Path:      name,
		Mesh:      mesh,
		Positions: len(obj.Positions),
		Normals:   len(obj.Normals),
		UVs:       len(obj.UVs),
		Skipped:   obj.Skipped,
		Elapsed:   time.Since(start),
	}

	log.Debug("mesh loaded",
		zap.Stringer("mode", opts.Mode),
		zap.Int("positions", res.Positions),
		zap.Int("faces", obj.FaceCount()),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("skipped", len(obj.Skipped)),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
