package lighting

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns a color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Named colors.
func White() Color { return RGB(255, 255, 255) }
func Black() Color { return RGB(0, 0, 0) }
func Gray() Color  { return RGB(128, 128, 128) }
func Red() Color   { return RGB(255, 0, 0) }
func Green() Color { return RGB(0, 255, 0) }
func Blue() Color  { return RGB(0, 0, 255) }

// Floats returns the channels normalized to 0-1 for GPU upload.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

// ParseColor parses #rrggbb or #rrggbbaa (the leading # is optional).
func ParseColor(s string) (Color, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(raw) {
	case 3:
		return RGB(raw[0], raw[1], raw[2]), nil
	case 4:
		return RGBA(raw[0], raw[1], raw[2], raw[3]), nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
}

// MarshalText implements encoding.TextMarshaler so colors appear as hex in config files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
