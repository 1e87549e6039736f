package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Buffer file extensions written by WriteBuffers.
const (
	VertexExt = ".vbo"
	IndexExt  = ".ibo"
)

// ErrOutputConflict is returned when two inputs would write the same buffer files.
var ErrOutputConflict = errors.New("output name conflict")

// Output names the buffer files written for one mesh.
type Output struct {
	Source   string
	Vertices string
	Indices  string
}

// WriteBuffers writes the interleaved vertex buffer and the index buffer of res into dir,
// named after the source file.
func WriteBuffers(res *Result, dir string) (Output, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Output{}, fmt.Errorf("creating output dir: %w", err)
	}

	base := outputBase(res.Path)
	out := Output{
		Source:   res.Path,
		Vertices: filepath.Join(dir, base+VertexExt),
		Indices:  filepath.Join(dir, base+IndexExt),
	}

	if err := os.WriteFile(out.Vertices, res.Mesh.MarshalVertices(), 0644); err != nil {
		return Output{}, fmt.Errorf("writing vertex buffer: %w", err)
	}
	if err := os.WriteFile(out.Indices, res.Mesh.MarshalIndices(), 0644); err != nil {
		return Output{}, fmt.Errorf("writing index buffer: %w", err)
	}
	return out, nil
}

func outputBase(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ConvertAll loads every path and writes its buffers into dir, running up to
// workers conversions at once. done is called after each successful file.
// The first failure cancels conversions that have not started yet.
// Inputs sharing a base name are rejected before anything is written.
func ConvertAll(ctx context.Context, paths []string, opts Options, dir string, workers int, done func(Output)) ([]Output, error) {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		base := outputBase(path)
		if prev, ok := seen[base]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrOutputConflict, prev, path, base+VertexExt)
		}
		seen[base] = path
	}

	outputs := make([]Output, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := LoadFile(path, opts)
			if err != nil {
				return err
			}
			out, err := WriteBuffers(res, dir)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			if done != nil {
				done(out)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
