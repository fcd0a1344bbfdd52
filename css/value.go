package css

import (
	"fmt"
	"strings"

	"github.com/tdewolff/csstidy"
)

// Value normalizes every sub-value of a property value, compacts box shorthands and rewrites the importance marker
// into its canonical form. Sub-values are separated by commas and spaces outside of strings and parentheses.
func (o *Optimiser) Value(property, value string) string {
	if canonical := csstidy.CompressImportant(value); canonical != value {
		o.log.Log("Optimised !important", csstidy.Information)
	}
	important := csstidy.IsImportant(value)

	layers := csstidy.Explode(',', csstidy.StripImportant(value))
	for i, layer := range layers {
		tokens := fields(layer)
		for j, token := range tokens {
			tokens[j] = o.SubValue(property, token)
		}
		layers[i] = strings.Join(tokens, " ")
	}
	value = strings.Join(layers, ",")

	if o.tables.IsShorthand(property) {
		if compacted := o.tables.CompactShorthand(value); compacted != value {
			o.log.Log(fmt.Sprintf("Optimised shorthand notation (%s): Changed \"%s\" to \"%s\"", property, value, compacted), csstidy.Information)
			value = compacted
		}
	}

	if important {
		value += csstidy.Important
	}
	return value
}

// SubValue normalizes a single space separated token of a property value: font-weight keywords become numbers,
// numbers are minified and receive or lose their unit and colors are compacted.
func (o *Optimiser) SubValue(property, subValue string) string {
	subValue = strings.TrimSpace(subValue)
	if subValue == "" {
		return subValue
	}

	important := csstidy.IsImportant(subValue)
	subValue = csstidy.StripImportant(subValue)

	if property == "font-weight" && o.config.CompressFontWeight {
		if subValue == "bold" {
			subValue = "700"
			o.log.Log("Optimised font-weight: Changed \"bold\" to \"700\"", csstidy.Information)
		} else if subValue == "normal" {
			subValue = "400"
			o.log.Log("Optimised font-weight: Changed \"normal\" to \"400\"", csstidy.Information)
		}
	}

	if compressed := o.compressNumbers(property, subValue); !strings.EqualFold(compressed, subValue) {
		if len(subValue) < len(compressed) {
			o.log.Log(fmt.Sprintf("Fixed invalid number: Changed \"%s\" to \"%s\"", subValue, compressed), csstidy.Warning)
		} else {
			o.log.Log(fmt.Sprintf("Optimised number: Changed \"%s\" to \"%s\"", subValue, compressed), csstidy.Information)
		}
		subValue = compressed
	}

	if o.config.CompressColors {
		if color := o.tables.CompactColor(subValue); color != subValue {
			if o.tables.IsColorAlias(subValue) {
				o.log.Log(fmt.Sprintf("Fixed invalid color name: Changed \"%s\" to \"%s\"", subValue, color), csstidy.Warning)
			} else {
				o.log.Log(fmt.Sprintf("Optimised color: Changed \"%s\" to \"%s\"", subValue, color), csstidy.Information)
			}
			subValue = color
		}
	}

	if important {
		subValue += csstidy.Important
	}
	return subValue
}

// compressNumbers minifies a numeric token. The font property may hold a size and line height separated by a
// slash. Numeric tokens of color properties become hex codes, others gain px on length properties when unitless
// and lose their unit when zero. Tokens that are not numeric are returned unchanged.
func (o *Optimiser) compressNumbers(property, subValue string) string {
	parts := []string{subValue}
	if property == "font" {
		parts = strings.Split(subValue, "/")
	}

	for i, part := range parts {
		num, ok := o.tables.AnalyseNumber(part)
		if !ok {
			return subValue
		}

		if o.tables.colorProps[property] {
			if (len(part) == 3 || len(part) == 6) && isDigits(part) {
				parts[i] = "#" + part
			}
			continue
		}

		if num.IsZero() {
			num.Unit = ""
		} else if num.Unit == "" && o.tables.unitProps[property] {
			num.Unit = "px"
		}
		parts[i] = num.String()
	}
	return strings.Join(parts, "/")
}
