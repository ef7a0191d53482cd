package render

import (
	"image/color"
	"sort"
)

// Palette holds the colours used to draw a board.
type Palette struct {
	On   color.RGBA
	Off  color.RGBA
	Grid color.RGBA
	Hint color.RGBA
	Text color.RGBA
}

var palettes = map[string]Palette{}

// Register adds a palette under the provided name.
func Register(name string, p Palette) {
	if name == "" {
		return
	}
	palettes[name] = p
}

// Lookup returns the named palette, falling back to "classic".
func Lookup(name string) (Palette, bool) {
	if p, ok := palettes[name]; ok {
		return p, true
	}
	return palettes["classic"], false
}

// Names lists the registered palettes alphabetically.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("classic", Palette{
		On:   color.RGBA{R: 255, G: 214, B: 64, A: 255},
		Off:  color.RGBA{R: 24, G: 28, B: 48, A: 255},
		Grid: color.RGBA{R: 8, G: 8, B: 12, A: 255},
		Hint: color.RGBA{R: 64, G: 200, B: 255, A: 255},
		Text: color.RGBA{R: 240, G: 240, B: 240, A: 255},
	})
	Register("amber", Palette{
		On:   color.RGBA{R: 255, G: 176, B: 0, A: 255},
		Off:  color.RGBA{R: 40, G: 20, B: 0, A: 255},
		Grid: color.RGBA{A: 255},
		Hint: color.RGBA{R: 255, G: 90, B: 40, A: 255},
		Text: color.RGBA{R: 255, G: 200, B: 120, A: 255},
	})
}
