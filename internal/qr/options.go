package qr

import "strings"

// Style selects the shape used for dark modules.
type Style int

const (
	StyleSquare Style = iota
	StyleDots
	StyleRounded
)

// ParseStyle maps "square", "dots" and "rounded" to a Style. Unknown values
// render as squares.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dots", "dot", "circle":
		return StyleDots
	case "rounded":
		return StyleRounded
	default:
		return StyleSquare
	}
}

func (s Style) String() string {
	switch s {
	case StyleDots:
		return "dots"
	case StyleRounded:
		return "rounded"
	default:
		return "square"
	}
}

// DefaultMargin is the quiet zone, in modules, used by DefaultOptions.
const DefaultMargin = 4

// Options controls the look of a single render.
type Options struct {
	Style Style
	// Label is drawn in a band under the code when non-empty.
	Label string
	// Margin is the quiet zone in modules. Negative values count as 0.
	Margin int
	Level  Level
	// SolidFinders keeps the three position markers as solid squares
	// whatever the style is.
	SolidFinders bool
}

// DefaultOptions returns square modules, a four module margin and level M.
func DefaultOptions() Options {
	return Options{
		Style:  StyleSquare,
		Margin: DefaultMargin,
		Level:  LevelM,
	}
}
