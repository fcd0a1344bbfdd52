package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/csstidy"
)

func ruleSet(rules ...any) *csstidy.RuleSet {
	rs := csstidy.NewRuleSet()
	for i := 0; i+1 < len(rules); i += 2 {
		rs.Set(rules[i].(string), rules[i+1].(*csstidy.Declaration))
	}
	return rs
}

////////////////////////////////////////////////////////////////

func TestMergeSelectors(t *testing.T) {
	red := declaration("color", "red")
	rs := ruleSet(
		"a", red,
		"b", declaration("color", "blue"),
		"c", declaration("color", "red"),
	)
	merged := MergeSelectors(rs)
	assert.Equal(t, []string{"b", "a,c"}, merged.Selectors())
	decl, _ := merged.Get("a,c")
	assert.Same(t, red, decl)
	assert.Equal(t, []string{"a", "b", "c"}, rs.Selectors(), "input must be left alone")

	// order of properties does not matter
	rs = ruleSet(
		"a", declaration("color", "red", "width", "0"),
		"b", declaration("width", "0", "color", "red"),
		"c", declaration("width", "0"),
		"d", declaration("color", "red", "width", "0"),
	)
	assert.Equal(t, []string{"c", "a,b,d"}, MergeSelectors(rs).Selectors())

	rs = ruleSet(
		"a", declaration("color", "red"),
		"b", declaration("color", "blue"),
		"c", declaration("color", "red"),
		"d", declaration("color", "blue"),
	)
	assert.Equal(t, []string{"a,c", "b,d"}, MergeSelectors(rs).Selectors())

	rs = ruleSet(
		"@font-face", declaration("font-family", "x"),
		"a", declaration("font-family", "x"),
	)
	assert.Equal(t, []string{"@font-face", "a"}, MergeSelectors(rs).Selectors())

	rs = ruleSet("a", declaration("color", "red"))
	assert.Equal(t, []string{"a"}, MergeSelectors(rs).Selectors())
}

func TestIsValidSelector(t *testing.T) {
	var selectorTests = []struct {
		selector string
		valid    bool
	}{
		{"a", true},
		{"a > b", true},
		{"a>b", true},
		{"a  b", true},
		{"a + b ~ c", true},
		{"a, b", true},
		{"div.class#id:hover", true},
		{"a,,b", false},
		{"a,", false},
		{"a >", false},
		{"> a", false},
		{"a > > b", false},
		{"", false},
	}
	for _, tt := range selectorTests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSelector(tt.selector))
		})
	}
}

func TestDiscardInvalidSelectors(t *testing.T) {
	rs := ruleSet(
		"a", declaration("color", "red"),
		"a,,b", declaration("color", "blue"),
		"b >", declaration("width", "0"),
		"c", declaration("width", "0"),
	)
	assert.Equal(t, []string{"a", "c"}, DiscardInvalidSelectors(rs).Selectors())
	assert.Equal(t, 4, rs.Len())
}
