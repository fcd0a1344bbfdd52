package css

/*
Uses http://www.w3.org/TR/CSS21/syndata.html#color-units for the valid color names
*/

// Background longhand names.
const (
	BackgroundImage      = "background-image"
	BackgroundSize       = "background-size"
	BackgroundRepeat     = "background-repeat"
	BackgroundPosition   = "background-position"
	BackgroundAttachment = "background-attachment"
	BackgroundClip       = "background-clip"
	BackgroundOrigin     = "background-origin"
	BackgroundColor      = "background-color"
)

type longhandDefault struct {
	name  string
	value string
}

// Tables holds the static lookup data of the optimiser. It is immutable after NewTables returns and may be
// shared between optimisers and goroutines.
type Tables struct {
	boxShorthands []string
	longhands     map[string][4]string
	synonyms      map[string]bool

	colorAliases map[string]string
	units        []string
	unitProps    map[string]bool
	colorProps   map[string]bool

	background     []longhandDefault
	bgRepeat       map[string]bool
	bgAttachment   map[string]bool
	bgClip         map[string]bool
	bgOrigin       map[string]bool
	bgPosition     map[string]bool
	bgNoImageSkips map[string]bool
}

// DefaultTables are the tables used by New.
var DefaultTables = NewTables()

// NewTables builds the lookup tables.
func NewTables() *Tables {
	t := &Tables{
		boxShorthands: []string{"border-color", "border-style", "border-width", "margin", "padding"},
		longhands:     map[string][4]string{},
		synonyms: map[string]bool{
			"-moz-border-radius": true,
		},
		colorAliases: colorAliases,

		// order matters, the first unit that ends the value wins
		units: []string{"in", "cm", "mm", "pt", "pc", "px", "rem", "em", "%", "ex", "gd", "vw", "vh", "vm", "deg", "grad", "rad", "ms", "s", "khz", "hz"},
		unitProps: set(
			"background", "background-position", "border", "border-top", "border-right", "border-bottom", "border-left",
			"border-width", "border-top-width", "border-right-width", "border-left-width", "border-bottom-width",
			"bottom", "border-spacing", "font-size", "height", "left", "letter-spacing",
			"margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
			"max-height", "max-width", "min-height", "min-width", "outline", "outline-width",
			"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
			"right", "text-indent", "top", "width", "word-spacing",
		),
		colorProps: set(
			"background-color", "border-color", "border-top-color", "border-right-color", "border-bottom-color",
			"border-left-color", "color", "outline-color",
		),

		background: []longhandDefault{
			{BackgroundImage, "none"},
			{BackgroundSize, "auto"},
			{BackgroundRepeat, "repeat"},
			{BackgroundPosition, "0 0"},
			{BackgroundAttachment, "scroll"},
			{BackgroundClip, "border"},
			{BackgroundOrigin, "padding"},
			{BackgroundColor, "transparent"},
		},
		bgRepeat:       set("repeat", "repeat-x", "repeat-y", "no-repeat", "space"),
		bgAttachment:   set("scroll", "fixed", "local"),
		bgClip:         set("border", "padding"),
		bgOrigin:       set("border", "padding", "content"),
		bgPosition:     set("top", "center", "bottom", "left", "right"),
		bgNoImageSkips: set(BackgroundSize, BackgroundPosition, BackgroundAttachment, BackgroundRepeat),
	}
	for _, shorthand := range t.boxShorthands {
		t.longhands[shorthand] = sides(shorthand)
	}
	return t
}

// Longhands returns the top, right, bottom and left longhands of a box shorthand.
func (t *Tables) Longhands(shorthand string) ([4]string, bool) {
	longhands, ok := t.longhands[shorthand]
	return longhands, ok
}

// IsShorthand returns true for box shorthands and their undecomposable synonyms.
func (t *Tables) IsShorthand(property string) bool {
	_, ok := t.longhands[property]
	return ok || t.synonyms[property]
}

// BackgroundDefault returns the initial value of a background longhand.
func (t *Tables) BackgroundDefault(property string) (string, bool) {
	for _, bg := range t.background {
		if bg.name == property {
			return bg.value, true
		}
	}
	return "", false
}

// sides expands margin into margin-top, ... and border-color into border-top-color, ...
func sides(shorthand string) [4]string {
	var longhands [4]string
	prefix, suffix := shorthand, ""
	if shorthand != "margin" && shorthand != "padding" {
		prefix, suffix = "border", shorthand[len("border"):]
	}
	for i, side := range [4]string{"-top", "-right", "-bottom", "-left"} {
		longhands[i] = prefix + side + suffix
	}
	return longhands
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, item := range items {
		m[item] = true
	}
	return m
}

// shortColorNames are rewritten regardless of the other color steps, hex codes are compared lower-case.
var shortColorNames = map[string]string{
	"black":   "#000",
	"fuchsia": "#f0f",
	"white":   "#fff",
	"yellow":  "#ff0",

	"#800000": "maroon",
	"#ffa500": "orange",
	"#808000": "olive",
	"#800080": "purple",
	"#008000": "green",
	"#000080": "navy",
	"#008080": "teal",
	"#c0c0c0": "silver",
	"#808080": "gray",
	"#f00":    "red",
}

// colorAliases are the color names that are not part of CSS 2.1.
var colorAliases = map[string]string{
	"aliceblue":            "#f0f8ff",
	"antiquewhite":         "#faebd7",
	"aquamarine":           "#7fffd4",
	"azure":                "#f0ffff",
	"beige":                "#f5f5dc",
	"bisque":               "#ffe4c4",
	"blanchedalmond":       "#ffebcd",
	"blueviolet":           "#8a2be2",
	"brown":                "#a52a2a",
	"burlywood":            "#deb887",
	"cadetblue":            "#5f9ea0",
	"chartreuse":           "#7fff00",
	"chocolate":            "#d2691e",
	"coral":                "#ff7f50",
	"cornflowerblue":       "#6495ed",
	"cornsilk":             "#fff8dc",
	"crimson":              "#dc143c",
	"cyan":                 "#00ffff",
	"darkblue":             "#00008b",
	"darkcyan":             "#008b8b",
	"darkgoldenrod":        "#b8860b",
	"darkgray":             "#a9a9a9",
	"darkgreen":            "#006400",
	"darkgrey":             "#a9a9a9",
	"darkkhaki":            "#bdb76b",
	"darkmagenta":          "#8b008b",
	"darkolivegreen":       "#556b2f",
	"darkorange":           "#ff8c00",
	"darkorchid":           "#9932cc",
	"darkred":              "#8b0000",
	"darksalmon":           "#e9967a",
	"darkseagreen":         "#8fbc8f",
	"darkslateblue":        "#483d8b",
	"darkslategray":        "#2f4f4f",
	"darkslategrey":        "#2f4f4f",
	"darkturquoise":        "#00ced1",
	"darkviolet":           "#9400d3",
	"deeppink":             "#ff1493",
	"deepskyblue":          "#00bfff",
	"dimgray":              "#696969",
	"dimgrey":              "#696969",
	"dodgerblue":           "#1e90ff",
	"firebrick":            "#b22222",
	"floralwhite":          "#fffaf0",
	"forestgreen":          "#228b22",
	"gainsboro":            "#dcdcdc",
	"ghostwhite":           "#f8f8ff",
	"gold":                 "#ffd700",
	"goldenrod":            "#daa520",
	"greenyellow":          "#adff2f",
	"grey":                 "#808080",
	"honeydew":             "#f0fff0",
	"hotpink":              "#ff69b4",
	"indianred":            "#cd5c5c",
	"indigo":               "#4b0082",
	"ivory":                "#fffff0",
	"khaki":                "#f0e68c",
	"lavender":             "#e6e6fa",
	"lavenderblush":        "#fff0f5",
	"lawngreen":            "#7cfc00",
	"lemonchiffon":         "#fffacd",
	"lightblue":            "#add8e6",
	"lightcoral":           "#f08080",
	"lightcyan":            "#e0ffff",
	"lightgoldenrodyellow": "#fafad2",
	"lightgray":            "#d3d3d3",
	"lightgreen":           "#90ee90",
	"lightgrey":            "#d3d3d3",
	"lightpink":            "#ffb6c1",
	"lightsalmon":          "#ffa07a",
	"lightseagreen":        "#20b2aa",
	"lightskyblue":         "#87cefa",
	"lightslategray":       "#778899",
	"lightslategrey":       "#778899",
	"lightsteelblue":       "#b0c4de",
	"lightyellow":          "#ffffe0",
	"limegreen":            "#32cd32",
	"linen":                "#faf0e6",
	"magenta":              "#ff00ff",
	"mediumaquamarine":     "#66cdaa",
	"mediumblue":           "#0000cd",
	"mediumorchid":         "#ba55d3",
	"mediumpurple":         "#9370db",
	"mediumseagreen":       "#3cb371",
	"mediumslateblue":      "#7b68ee",
	"mediumspringgreen":    "#00fa9a",
	"mediumturquoise":      "#48d1cc",
	"mediumvioletred":      "#c71585",
	"midnightblue":         "#191970",
	"mintcream":            "#f5fffa",
	"mistyrose":            "#ffe4e1",
	"moccasin":             "#ffe4b5",
	"navajowhite":          "#ffdead",
	"oldlace":              "#fdf5e6",
	"olivedrab":            "#6b8e23",
	"orangered":            "#ff4500",
	"orchid":               "#da70d6",
	"palegoldenrod":        "#eee8aa",
	"palegreen":            "#98fb98",
	"paleturquoise":        "#afeeee",
	"palevioletred":        "#db7093",
	"papayawhip":           "#ffefd5",
	"peachpuff":            "#ffdab9",
	"peru":                 "#cd853f",
	"pink":                 "#ffc0cb",
	"plum":                 "#dda0dd",
	"powderblue":           "#b0e0e6",
	"rosybrown":            "#bc8f8f",
	"royalblue":            "#4169e1",
	"saddlebrown":          "#8b4513",
	"salmon":               "#fa8072",
	"sandybrown":           "#f4a460",
	"seagreen":             "#2e8b57",
	"seashell":             "#fff5ee",
	"sienna":               "#a0522d",
	"skyblue":              "#87ceeb",
	"slateblue":            "#6a5acd",
	"slategray":            "#708090",
	"slategrey":            "#708090",
	"snow":                 "#fffafa",
	"springgreen":          "#00ff7f",
	"steelblue":            "#4682b4",
	"tan":                  "#d2b48c",
	"thistle":              "#d8bfd8",
	"tomato":               "#ff6347",
	"turquoise":            "#40e0d0",
	"violet":               "#ee82ee",
	"wheat":                "#f5deb3",
	"whitesmoke":           "#f5f5f5",
	"yellowgreen":          "#9acd32",
}
