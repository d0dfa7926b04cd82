package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a packed 0xRRGGBB value. In YAML it may be written as an integer,
// "#rrggbb", "0xrrggbb" or a CSS color name.
type Color uint32

// ParseColor converts a textual color into its packed form
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "0x"):
		return parseHex(s[2:])
	}
	if c, ok := colornames.Map[s]; ok {
		return Color(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (Color, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("hex color %q must have 3 or 6 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return Color(v), nil
}

// UnmarshalYAML accepts both numeric and string forms
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n uint32
	if err := unmarshal(&n); err == nil {
		*c = Color(n)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Hex returns the packed value as used by scene colors
func (c Color) Hex() uint32 {
	return uint32(c)
}
