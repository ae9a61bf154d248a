package plot

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// DefaultPalette is the cycle of colors assigned to series that carry no
// explicit style. The order follows common plotting conventions: the
// first few series should remain distinguishable on both light and dark
// backgrounds.
var DefaultPalette = []RGBA{
	FromColor(colornames.Steelblue),
	FromColor(colornames.Orangered),
	FromColor(colornames.Forestgreen),
	FromColor(colornames.Darkorchid),
	FromColor(colornames.Goldenrod),
	FromColor(colornames.Teal),
	FromColor(colornames.Crimson),
	FromColor(colornames.Slategray),
}

// PaletteColor returns the i-th palette color, cycling past the end.
func PaletteColor(i int) RGBA {
	if i < 0 {
		i = -i
	}
	return DefaultPalette[i%len(DefaultPalette)]
}

// Named looks up an SVG 1.1 color name ("steelblue", "tomato", ...).
// The second return value reports whether the name is known.
func Named(name string) (RGBA, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return FromColor(color.Color(c)), true
}
