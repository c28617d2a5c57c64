package drawing

import (
	"strconv"
	"strings"

	"github.com/osuushi/svgsurvex/survey"
	"github.com/pkg/errors"
)

// Named colors likely to turn up as stroke colors. Note that CSS green is
// only half bright; Inkscape's pure green is lime.
var namedColors = map[string]survey.Color{
	"black":   rgb(0, 0, 0),
	"white":   rgb(255, 255, 255),
	"red":     rgb(255, 0, 0),
	"lime":    rgb(0, 255, 0),
	"green":   rgb(0, 128, 0),
	"blue":    rgb(0, 0, 255),
	"yellow":  rgb(255, 255, 0),
	"cyan":    rgb(0, 255, 255),
	"aqua":    rgb(0, 255, 255),
	"magenta": rgb(255, 0, 255),
	"fuchsia": rgb(255, 0, 255),
	"gray":    rgb(128, 128, 128),
	"grey":    rgb(128, 128, 128),
	"silver":  rgb(192, 192, 192),
	"maroon":  rgb(128, 0, 0),
	"olive":   rgb(128, 128, 0),
	"navy":    rgb(0, 0, 128),
	"purple":  rgb(128, 0, 128),
	"teal":    rgb(0, 128, 128),
	"orange":  rgb(255, 165, 0),
}

func rgb(r, g, b uint8) survey.Color {
	return survey.Color{R: r, G: g, B: b}
}

// ParseColor accepts #rgb, #rrggbb, rgb(r, g, b) and the common color names.
func ParseColor(s string) (survey.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}

	switch {
	case strings.HasPrefix(v, "#"):
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			break
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			break
		}
		return survey.Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		parts := strings.Split(v[4:len(v)-1], ",")
		if len(parts) != 3 {
			break
		}
		var channels [3]uint8
		for i, part := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return survey.Color{}, errors.Errorf("bad color %q", s)
			}
			channels[i] = uint8(n)
		}
		return survey.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
	}
	return survey.Color{}, errors.Errorf("bad color %q", s)
}

// FormatColor writes a color the way Inkscape does, as #rrggbb.
func FormatColor(c survey.Color) string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}

// Parse an inline style attribute like "fill:none;stroke:#ff0000".
func parseStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return props
}
