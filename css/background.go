package css

import (
	"strings"

	"github.com/tdewolff/csstidy"
)

// DissolveBackground splits a background shorthand into its eight longhands. Every layer, separated by commas, is
// classified token by token. Longhands that no layer sets receive their default. Each longhand value lists the
// layers that set it, separated by commas, so layers that omit a component shift the lists against each other.
func (t *Tables) DissolveBackground(value string) *csstidy.Declaration {
	important := ""
	if csstidy.IsImportant(value) {
		important = csstidy.Important
		value = csstidy.StripImportant(value)
	}

	layers := map[string][]string{}
	for _, layer := range csstidy.Explode(',', value) {
		var hasImage, hasClip, hasColor bool
		var position []string
		for _, token := range fields(layer) {
			switch {
			case !hasImage && isImage(token):
				layers[BackgroundImage] = append(layers[BackgroundImage], token)
				hasImage = true
			case t.bgRepeat[token]:
				layers[BackgroundRepeat] = append(layers[BackgroundRepeat], token)
			case t.bgAttachment[token]:
				layers[BackgroundAttachment] = append(layers[BackgroundAttachment], token)
			case !hasClip && t.bgClip[token]:
				layers[BackgroundClip] = append(layers[BackgroundClip], token)
				hasClip = true
			case t.bgOrigin[token]:
				layers[BackgroundOrigin] = append(layers[BackgroundOrigin], token)
			case token[0] == '(':
				layers[BackgroundSize] = append(layers[BackgroundSize], strings.TrimSuffix(token[1:], ")"))
			case t.bgPosition[token] || isNumberStart(token[0]):
				position = append(position, token)
			case !hasColor:
				layers[BackgroundColor] = append(layers[BackgroundColor], token)
				hasColor = true
			}
		}
		if 0 < len(position) {
			layers[BackgroundPosition] = append(layers[BackgroundPosition], strings.Join(position, " "))
		}
	}

	decl := csstidy.NewDeclaration()
	for _, bg := range t.background {
		if values, ok := layers[bg.name]; ok {
			decl.Set(bg.name, strings.Join(values, ",")+important)
		} else {
			decl.Set(bg.name, bg.value+important)
		}
	}
	return decl
}

// MergeBackground replaces the background longhands of decl by a single background shorthand. Longhands equal to
// their default are left out, as are size, position, attachment and repeat of layers without an image. When
// nothing is left the longhands are removed without adding a shorthand. It returns false when decl has no
// background longhands.
func (t *Tables) MergeBackground(decl *csstidy.Declaration) bool {
	present := false
	for _, bg := range t.background {
		if decl.Has(bg.name) {
			present = true
			break
		}
	}
	if !present {
		return false
	}

	var images []string
	n := 1
	if image, ok := decl.Get(BackgroundImage); ok {
		images = csstidy.Explode(',', csstidy.StripImportant(image))
		n = max(n, len(images))
	}
	if color, ok := decl.Get(BackgroundColor); ok {
		n = max(n, len(csstidy.Explode(',', csstidy.StripImportant(color))))
	}

	important := false
	sb := strings.Builder{}
	for i := 0; i < n; i++ {
		for _, bg := range t.background {
			value, ok := decl.Get(bg.name)
			if !ok {
				continue
			}
			if t.bgNoImageSkips[bg.name] && (len(images) <= i || strings.TrimSpace(images[i]) == "none") {
				continue
			}
			if csstidy.IsImportant(value) {
				important = true
				value = csstidy.StripImportant(value)
			}
			if value == bg.value {
				continue
			}

			layers := csstidy.Explode(',', value)
			if len(layers) <= i {
				continue
			}
			layer := strings.TrimSpace(layers[i])
			if bg.name == BackgroundSize {
				layer = "(" + layer + ")"
			}
			sb.WriteString(layer)
			sb.WriteByte(' ')
		}

		s := strings.TrimRight(sb.String(), " ")
		sb.Reset()
		sb.WriteString(s)
		if i != n-1 {
			sb.WriteByte(',')
		}
	}

	for _, bg := range t.background {
		decl.Delete(bg.name)
	}
	if merged := strings.TrimSpace(sb.String()); merged != "" {
		if important {
			merged += csstidy.Important
		}
		decl.Delete("background")
		decl.Set("background", merged)
	}
	return true
}

func isImage(token string) bool {
	if token == "none" {
		return true
	}
	lower := strings.ToLower(token)
	return strings.HasPrefix(lower, "url(") || strings.Contains(lower, "gradient(") || strings.HasPrefix(lower, "image(")
}

func isNumberStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '-' || c == '.' || c == '+'
}
