package css

import (
	"strings"

	"github.com/tdewolff/csstidy"
)

// CompactBox returns the shortest box notation of two to four top, right, bottom, left tokens. Other token counts
// are joined unchanged. The importance marker is appended when important is set.
func CompactBox(tokens []string, important bool) string {
	v := tokens
	switch len(v) {
	case 4:
		if v[0] == v[1] && v[0] == v[2] && v[0] == v[3] {
			v = v[:1]
		} else if v[1] == v[3] && v[0] == v[2] {
			v = v[:2]
		} else if v[1] == v[3] {
			v = v[:3]
		}
	case 3:
		if v[0] == v[1] && v[0] == v[2] {
			v = v[:1]
		} else if v[0] == v[2] {
			v = v[:2]
		}
	case 2:
		if v[0] == v[1] {
			v = v[:1]
		}
	}

	s := strings.Join(v, " ")
	if important {
		s += csstidy.Important
	}
	return s
}

// CompactShorthand compacts the value of a box shorthand. Values with fewer than two or more than four tokens are
// returned unchanged.
func (t *Tables) CompactShorthand(value string) string {
	important := csstidy.IsImportant(value)
	tokens := fields(csstidy.StripImportant(value))
	if len(tokens) < 2 || 4 < len(tokens) {
		return value
	}
	return CompactBox(tokens, important)
}

// DissolveBox expands a box shorthand into its four longhands following the 1-, 2-, 3- and 4-value rules. Any other
// property, and values that do not have one to four tokens, yield a declaration holding only the input.
func (t *Tables) DissolveBox(property, value string) *csstidy.Declaration {
	decl := csstidy.NewDeclaration()
	longhands, ok := t.longhands[property]
	if !ok {
		decl.Set(property, value)
		return decl
	}

	important := ""
	if csstidy.IsImportant(value) {
		important = csstidy.Important
		value = csstidy.StripImportant(value)
	}

	v := fields(value)
	switch len(v) {
	case 1:
		for _, longhand := range longhands {
			decl.Set(longhand, v[0]+important)
		}
	case 2:
		for i, longhand := range longhands {
			decl.Set(longhand, v[i%2]+important)
		}
	case 3:
		decl.Set(longhands[0], v[0]+important)
		decl.Set(longhands[1], v[1]+important)
		decl.Set(longhands[3], v[1]+important)
		decl.Set(longhands[2], v[2]+important)
	case 4:
		for i, longhand := range longhands {
			decl.Set(longhand, v[i]+important)
		}
	default:
		decl.Set(property, value+important)
	}
	return decl
}

// MergeBox replaces every complete set of four longhands by their compacted shorthand, which is appended at the
// end. The shorthand is important if any of the longhands is. It returns the shorthands that were created.
func (t *Tables) MergeBox(decl *csstidy.Declaration) []string {
	var merged []string
	for _, shorthand := range t.boxShorthands {
		longhands := t.longhands[shorthand]

		var values [4]string
		complete := true
		for i, longhand := range longhands {
			if values[i], complete = decl.Get(longhand); !complete {
				break
			}
		}
		if !complete {
			continue
		}

		important := false
		for i, value := range values {
			if csstidy.IsImportant(value) {
				important = true
				values[i] = csstidy.StripImportant(value)
			}
		}

		value := strings.Join(values[:], " ")
		if important {
			value += csstidy.Important
		}
		for _, longhand := range longhands {
			decl.Delete(longhand)
		}
		decl.Delete(shorthand)
		decl.Set(shorthand, t.CompactShorthand(value))
		merged = append(merged, shorthand)
	}
	return merged
}

// fields splits a value on spaces outside of strings and parentheses, dropping empty tokens.
func fields(value string) []string {
	tokens := csstidy.Explode(' ', strings.TrimSpace(value))
	j := 0
	for _, token := range tokens {
		if token = strings.TrimSpace(token); token != "" {
			tokens[j] = token
			j++
		}
	}
	return tokens[:j]
}
