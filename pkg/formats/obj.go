// Package formats provides parsers for text mesh formats.
// OBJ (Wavefront-style) attribute pool parser for triangulated meshes.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/meshkit/pkg/encoding"
	"github.com/Faultbox/meshkit/pkg/math"
)

// OBJ format errors.
var (
	ErrIO     = errors.New("mesh input unreadable")
	ErrFormat = errors.New("malformed mesh data")
	ErrIndex  = errors.New("attribute index out of range")
)

// AbsentIndex marks a channel that is not read from the text for this load.
const AbsentIndex int32 = -1

// maxLineLength bounds a single scanned line.
const maxLineLength = 16 * 1024 * 1024

// SynthesisMode selects which vertex channels are generated instead of read.
type SynthesisMode int

const (
	SynthesizeNone    SynthesisMode = iota // Read uv and normal: f a/b/c
	SynthesizeUV                           // Read normal only: f a//c
	SynthesizeNormals                      // Read uv only: f a/b
	SynthesizeBoth                         // Read positions only: f a
)

// String returns the config name of the mode.
func (m SynthesisMode) String() string {
	switch m {
	case SynthesizeNone:
		return "none"
	case SynthesizeUV:
		return "uv"
	case SynthesizeNormals:
		return "normals"
	case SynthesizeBoth:
		return "both"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ReadsUV returns true if texture coordinate indices are taken from face lines.
func (m SynthesisMode) ReadsUV() bool {
	return m == SynthesizeNone || m == SynthesizeNormals
}

// ReadsNormals returns true if normal indices are taken from face lines.
func (m SynthesisMode) ReadsNormals() bool {
	return m == SynthesizeNone || m == SynthesizeUV
}

// ParseSynthesisMode converts a config name ("none", "uv", "normals", "both") to a mode.
func ParseSynthesisMode(s string) (SynthesisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SynthesizeNone, nil
	case "uv":
		return SynthesizeUV, nil
	case "normals":
		return SynthesizeNormals, nil
	case "both":
		return SynthesizeBoth, nil
	default:
		return SynthesizeNone, fmt.Errorf("unknown synthesis mode %q", s)
	}
}

// IndexTriple holds the 0-based pool indices of one face corner.
// Two corners with equal triples resolve to the same compact vertex.
type IndexTriple struct {
	Position int32
	UV       int32
	Normal   int32
}

// SkippedLine records a line that matched no declaration.
type SkippedLine struct {
	Line int    // 1-based line number
	Text string // Trimmed line content
}

// OBJ holds the raw attribute pools of a parsed mesh description.
// References between faces and pools are not resolved.
type OBJ struct {
	Mode      SynthesisMode
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Faces     [][3]IndexTriple
	Skipped   []SkippedLine
}

// FaceCount returns the number of triangles.
func (o *OBJ) FaceCount() int {
	return len(o.Faces)
}

// LineError attaches a 1-based line number to a parse failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseOBJ parses UTF-8 (or BOM-marked UTF-16) OBJ text from a byte slice.
func ParseOBJ(data []byte, mode SynthesisMode) (*OBJ, error) {
	return ParseOBJEncoded(data, mode, "")
}

// ParseOBJEncoded parses OBJ text written in the encoding named by label
// (e.g. "windows-1252"). A byte order mark overrides label.
func ParseOBJEncoded(data []byte, mode SynthesisMode, label string) (*OBJ, error) {
	text, err := encoding.LabelToUTF8(data, label)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding text: %v", ErrIO, err)
	}

	obj := &OBJ{Mode: mode}

	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := obj.parseLine(line, lineNum); err != nil {
			return nil, &LineError{Line: lineNum, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return obj, nil
}

// ParseOBJReader reads r to completion and parses it.
func ParseOBJReader(r io.Reader, mode SynthesisMode) (*OBJ, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return ParseOBJ(data, mode)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, mode SynthesisMode) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading OBJ file: %v", ErrIO, err)
	}
	return ParseOBJ(data, mode)
}

// parseLine dispatches a non-empty line by its keyword.
func (o *OBJ) parseLine(line string, lineNum int) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "v":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return fmt.Errorf("position: %w", err)
		}
		o.Positions = append(o.Positions, v)
	case "vn":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		o.Normals = append(o.Normals, v)
	case "vt":
		v, err := parseVec2(fields[1:])
		if err != nil {
			return fmt.Errorf("texture coordinate: %w", err)
		}
		o.UVs = append(o.UVs, v)
	case "f":
		face, err := parseFace(fields[1:], o.Mode)
		if err != nil {
			return fmt.Errorf("face: %w", err)
		}
		o.Faces = append(o.Faces, face)
	default:
		o.Skipped = append(o.Skipped, SkippedLine{Line: lineNum, Text: line})
	}
	return nil
}

func parseVec3(tokens []string) (math.Vec3, error) {
	f, err := parseFloats(tokens, 3)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}

func parseVec2(tokens []string) (math.Vec2, error) {
	f, err := parseFloats(tokens, 2)
	if err != nil {
		return math.Vec2{}, err
	}
	return math.Vec2{X: f[0], Y: f[1]}, nil
}

// parseFloats parses the first n tokens. Trailing tokens (e.g. a w component) are ignored.
func parseFloats(tokens []string, n int) ([]float32, error) {
	if len(tokens) < n {
		return nil, fmt.Errorf("%w: expected %d components, got %d", ErrFormat, n, len(tokens))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(tokens[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrFormat, tokens[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFace parses exactly three corners in the variant selected by mode.
func parseFace(tokens []string, mode SynthesisMode) ([3]IndexTriple, error) {
	var face [3]IndexTriple
	if len(tokens) != 3 {
		return face, fmt.Errorf("%w: expected 3 corners, got %d", ErrFormat, len(tokens))
	}
	for i, tok := range tokens {
		corner, err := parseCorner(tok, mode)
		if err != nil {
			return face, err
		}
		face[i] = corner
	}
	return face, nil
}

// parseCorner parses idx, idx/uv, idx//normal or idx/uv/normal.
// Slots for synthesized channels are accepted and ignored.
func parseCorner(tok string, mode SynthesisMode) (IndexTriple, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return IndexTriple{}, fmt.Errorf("%w: corner %q has too many slots", ErrFormat, tok)
	}

	corner := IndexTriple{UV: AbsentIndex, Normal: AbsentIndex}

	pos, err := parseIndex(parts[0])
	if err != nil {
		return IndexTriple{}, err
	}
	corner.Position = pos

	if mode.ReadsUV() {
		if len(parts) < 2 || parts[1] == "" {
			return IndexTriple{}, fmt.Errorf("%w: corner %q has no texture coordinate index", ErrFormat, tok)
		}
		if corner.UV, err = parseIndex(parts[1]); err != nil {
			return IndexTriple{}, err
		}
	}

	if mode.ReadsNormals() {
		if len(parts) < 3 || parts[2] == "" {
			return IndexTriple{}, fmt.Errorf("%w: corner %q has no normal index", ErrFormat, tok)
		}
		if corner.Normal, err = parseIndex(parts[2]); err != nil {
			return IndexTriple{}, err
		}
	}

	return corner, nil
}

// parseIndex converts a 1-based index to 0-based. Index 0 becomes -1 and fails bounds checks later.
func parseIndex(s string) (int32, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid index %q", ErrFormat, s)
	}
	return int32(n) - 1, nil
}
