package css

import (
	"math"
	"strconv"
	"strings"
)

// CompactColor returns the shortest notation of a color. It converts rgb() to hex, replaces color names that are
// not part of CSS 2.1 by their hex code, shortens #aabbcc to #abc and swaps names and hex codes for whichever is
// shorter. Values that are no color are returned unchanged.
func (t *Tables) CompactColor(color string) string {
	if hex, ok := rgbToHex(color); ok {
		color = hex
	}

	if hex, ok := t.colorAliases[strings.ToLower(color)]; ok {
		color = hex
	}

	if len(color) == 7 && color[0] == '#' && isHex(color[1:]) {
		lower := strings.ToLower(color)
		if lower[1] == lower[2] && lower[3] == lower[4] && lower[5] == lower[6] {
			color = string([]byte{'#', lower[1], lower[3], lower[5]})
		}
	}

	if short, ok := shortColorNames[strings.ToLower(color)]; ok {
		color = short
	}
	return color
}

// IsColorAlias returns true for color names that are replaced because they are not valid CSS 2.1.
func (t *Tables) IsColorAlias(name string) bool {
	_, ok := t.colorAliases[strings.ToLower(name)]
	return ok
}

// rgbToHex converts rgb(r,g,b) with integer or percentage components into #rrggbb.
func rgbToHex(color string) (string, bool) {
	if len(color) < 5 || !strings.EqualFold(color[:4], "rgb(") || color[len(color)-1] != ')' {
		return "", false
	}
	args := strings.Split(color[4:len(color)-1], ",")
	if len(args) != 3 {
		return "", false
	}

	hex := make([]byte, 1, 7)
	hex[0] = '#'
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		percentage := strings.HasSuffix(arg, "%")
		if percentage {
			arg = arg[:len(arg)-1]
		}
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		if percentage {
			f = math.Round(f * 255.0 / 100.0)
		}
		v := int(math.Min(math.Max(f, 0.0), 255.0))
		if v < 16 {
			hex = append(hex, '0')
		}
		hex = strconv.AppendInt(hex, int64(v), 16)
	}
	return string(hex), true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
