package css

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/csstidy"
)

func assertBox(t *testing.T, tokens string, important bool, expected string) {
	assert.Equal(t, expected, CompactBox(strings.Fields(tokens), important), "box must match in "+tokens)
}

func declaration(properties ...string) *csstidy.Declaration {
	decl := csstidy.NewDeclaration()
	for i := 0; i+1 < len(properties); i += 2 {
		decl.Set(properties[i], properties[i+1])
	}
	return decl
}

func pairs(decl *csstidy.Declaration) []string {
	var props []string
	decl.Each(func(property, value string) {
		props = append(props, property, value)
	})
	return props
}

////////////////////////////////////////////////////////////////

func TestCompactBox(t *testing.T) {
	assertBox(t, "1px 1px 1px 1px", false, "1px")
	assertBox(t, "1px 2px 1px 2px", false, "1px 2px")
	assertBox(t, "1px 2px 3px 2px", false, "1px 2px 3px")
	assertBox(t, "1px 2px 3px 4px", false, "1px 2px 3px 4px")
	assertBox(t, "1px 1px 1px", false, "1px")
	assertBox(t, "1px 2px 1px", false, "1px 2px")
	assertBox(t, "1px 2px 3px", false, "1px 2px 3px")
	assertBox(t, "0 0", false, "0")
	assertBox(t, "0 1px", false, "0 1px")
	assertBox(t, "1px", false, "1px")
	assertBox(t, "1px 1px 1px 1px", true, "1px!important")
	assertBox(t, "1px 2px 3px 4px 5px", false, "1px 2px 3px 4px 5px")
}

func TestCompactShorthand(t *testing.T) {
	assert.Equal(t, "1px!important", DefaultTables.CompactShorthand("1px 1px 1px 1px !important"))
	assert.Equal(t, "1px 2px", DefaultTables.CompactShorthand("1px  2px 1px 2px"))
	assert.Equal(t, "1px", DefaultTables.CompactShorthand("1px"))
	assert.Equal(t, "1px !important", DefaultTables.CompactShorthand("1px !important"))
	assert.Equal(t, "a b c d e", DefaultTables.CompactShorthand("a b c d e"))
	assert.Equal(t, "calc(1px + 2px) 0", DefaultTables.CompactShorthand("calc(1px + 2px) 0"))
}

func TestDissolveBox(t *testing.T) {
	var dissolveTests = []struct {
		property string
		value    string
		expected []string
	}{
		{"margin", "1px", []string{"margin-top", "1px", "margin-right", "1px", "margin-bottom", "1px", "margin-left", "1px"}},
		{"margin", "1px 2px", []string{"margin-top", "1px", "margin-right", "2px", "margin-bottom", "1px", "margin-left", "2px"}},
		{"margin", "1px 2px 3px", []string{"margin-top", "1px", "margin-right", "2px", "margin-left", "2px", "margin-bottom", "3px"}},
		{"padding", "1px 2px 3px 4px", []string{"padding-top", "1px", "padding-right", "2px", "padding-bottom", "3px", "padding-left", "4px"}},
		{"border-color", "red blue", []string{"border-top-color", "red", "border-right-color", "blue", "border-bottom-color", "red", "border-left-color", "blue"}},
		{"border-width", "0!important", []string{"border-top-width", "0!important", "border-right-width", "0!important", "border-bottom-width", "0!important", "border-left-width", "0!important"}},
		{"border-style", "solid ! important", []string{"border-top-style", "solid!important", "border-right-style", "solid!important", "border-bottom-style", "solid!important", "border-left-style", "solid!important"}},
		{"margin", "1px 2px 3px 4px 5px", []string{"margin", "1px 2px 3px 4px 5px"}},
		{"color", "red", []string{"color", "red"}},
		{"-moz-border-radius", "1px 2px", []string{"-moz-border-radius", "1px 2px"}},
	}
	for _, tt := range dissolveTests {
		t.Run(tt.property+":"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, pairs(DefaultTables.DissolveBox(tt.property, tt.value)))
		})
	}
}

func TestMergeBox(t *testing.T) {
	decl := declaration("color", "red", "margin-top", "1px", "margin-right", "2px", "margin-bottom", "1px", "margin-left", "2px", "width", "0")
	assert.Equal(t, []string{"margin"}, DefaultTables.MergeBox(decl))
	assert.Equal(t, []string{"color", "red", "width", "0", "margin", "1px 2px"}, pairs(decl))

	decl = declaration("padding-top", "1px", "padding-right", "1px", "padding-bottom", "1px")
	assert.Empty(t, DefaultTables.MergeBox(decl))
	assert.Equal(t, 3, decl.Len())

	decl = declaration("border-top-width", "1px", "border-right-width", "1px!important", "border-bottom-width", "1px", "border-left-width", "1px")
	assert.Equal(t, []string{"border-width"}, DefaultTables.MergeBox(decl))
	assert.Equal(t, []string{"border-width", "1px!important"}, pairs(decl))

	decl = declaration(
		"margin-top", "0", "margin-right", "0", "margin-bottom", "0", "margin-left", "0",
		"padding-top", "0", "padding-right", "1px", "padding-bottom", "2px", "padding-left", "3px",
	)
	assert.Equal(t, []string{"margin", "padding"}, DefaultTables.MergeBox(decl))
	assert.Equal(t, []string{"margin", "0", "padding", "0 1px 2px 3px"}, pairs(decl))
}

func TestDissolveMergeBox(t *testing.T) {
	for _, value := range []string{"1px", "1px 2px", "1px 2px 3px", "1px 2px 3px 4px", "1px 2px 1px 2px!important"} {
		decl := DefaultTables.DissolveBox("margin", value)
		DefaultTables.MergeBox(decl)
		got, _ := decl.Get("margin")
		assert.Equal(t, DefaultTables.CompactShorthand(value), got, "round trip must match in "+value)
	}
}
