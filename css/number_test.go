package css

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestAnalyseNumber(t *testing.T) {
	var numberTests = []struct {
		token string
		value string
		unit  string
	}{
		{"10px", "10", "px"},
		{"1.50EM", "1.5", "em"},
		{"0.5", ".5", ""},
		{"-0.0", "0", ""},
		{"-0.50", "-.5", ""},
		{"10.0", "10", ""},
		{"007", "7", ""},
		{"+.5em", ".5", "em"},
		{"100%", "100", "%"},
		{"2rem", "2", "rem"},
		{"5ms", "5", "ms"},
		{"5s", "5", "s"},
		{"3kHz", "3", "khz"},
		{"90deg", "90", "deg"},
		{"1e3px", "1e3", "px"},
	}
	for _, tt := range numberTests {
		t.Run(tt.token, func(t *testing.T) {
			num, ok := DefaultTables.AnalyseNumber(tt.token)
			test.T(t, ok, true, "must be a number")
			test.String(t, num.Value, tt.value)
			test.String(t, num.Unit, tt.unit)
		})
	}
}

func TestAnalyseNumberRejects(t *testing.T) {
	var rejectTests = []string{
		"",
		"px",
		"auto",
		"#fff",
		"%",
		"1px2",
		"1s2s",
		"1.2.3",
		"url(a)",
		"-moz-box",
	}
	for _, token := range rejectTests {
		t.Run(token, func(t *testing.T) {
			_, ok := DefaultTables.AnalyseNumber(token)
			test.T(t, ok, false, "must not be a number")
		})
	}
}

func TestNumberIsZero(t *testing.T) {
	num, _ := DefaultTables.AnalyseNumber("0.000em")
	test.T(t, num.IsZero(), true)
	test.String(t, num.String(), "0em")

	num, _ = DefaultTables.AnalyseNumber("0.01em")
	test.T(t, num.IsZero(), false)
	test.String(t, num.String(), ".01em")
}
