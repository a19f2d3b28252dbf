package hexcolor

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when an input is not a 6 digit hex colour.
var ErrInvalidFormat = fmt.Errorf("invalid hex colour format")

// RGB holds one 8 bit channel per colour.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseHex parses a 6 digit hex colour string, with or without a leading '#'.
func ParseHex(s string) (RGB, error) {
	trimmed := strings.TrimPrefix(s, "#")
	if len(trimmed) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return RGB{
		R: uint8(value >> 16 & 0xFF),
		G: uint8(value >> 8 & 0xFF),
		B: uint8(value & 0xFF),
	}, nil
}

// Pack combines three channels into a single integer, R<<16 | G<<8 | B.
// Channels outside the byte range are masked, not rejected.
func Pack(r, g, b int) int {
	return (r&0xFF)<<16 | (g&0xFF)<<8 | b&0xFF
}

// Value returns the packed integer form of the colour.
func (c RGB) Value() int {
	return Pack(int(c.R), int(c.G), int(c.B))
}

// Format renders a packed colour value as 6 uppercase hex digits.
func Format(value int) string {
	return fmt.Sprintf("%06X", value&0xFFFFFF)
}
