package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for input the engine cannot derive a color from:
// malformed color strings and empty pixel buffers.
var ErrInvalidInput = errors.New("invalid input")

// ARGB is a color packed as 0xAARRGGBB. It is the canonical exchange format
// between all packages; alpha is 0xff for every color the engine produces.
type ARGB uint32

// FromRGB returns an opaque ARGB color from 8-bit channels.
func FromRGB(r, g, b uint8) ARGB {
	return ARGB(0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any image/color value to ARGB, un-premultiplying alpha.
func FromColor(c stdcolor.Color) ARGB {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return ARGB(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// Opaque reports whether the alpha channel is 0xff.
func (c ARGB) Opaque() bool { return c.Alpha() == 0xff }

// RGBA implements image/color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// ParseHex parses a color string like "#eb6f92" into an opaque ARGB color.
// Accepted forms are rgb, rrggbb and aarrggbb, with or without a leading #.
// Any other input wraps ErrInvalidInput.
func ParseHex(s string) (ARGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 3:
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
		fallthrough
	case 6:
		raw = "ff" + raw
	case 8:
	default:
		return 0, fmt.Errorf("%w: hex color %q must be 3, 6 or 8 hex digits", ErrInvalidInput, s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: hex color %q: %v", ErrInvalidInput, s, err)
	}
	return ARGB(v), nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// Alpha is not included.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c ARGB) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// HexAlpha returns the color in #aarrggbb form.
func (c ARGB) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Alpha(), c.Red(), c.Green(), c.Blue())
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c ARGB) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
}

func (c ARGB) String() string {
	return c.HexAlpha()
}
