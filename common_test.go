package csstidy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertNumber(t *testing.T, x, e string) {
	assert.Equal(t, e, string(Number([]byte(x))), "numbers must match in "+x)
}

////////////////////////////////////////////////////////////////

func TestNumber(t *testing.T) {
	assertNumber(t, "0", "0")
	assertNumber(t, ".0", "0")
	assertNumber(t, "-0", "0")
	assertNumber(t, "0e5", "0")
	assertNumber(t, "1.0", "1")
	assertNumber(t, "1.", "1")
	assertNumber(t, "0.1", ".1")
	assertNumber(t, "00.50", ".5")
	assertNumber(t, "+1", "1")
	assertNumber(t, "-1", "-1")
	assertNumber(t, "-10", "-10")
	assertNumber(t, "-0.1", "-.1")
	assertNumber(t, "-00.5", "-.5")
	assertNumber(t, "100", "100")
	assertNumber(t, "0.001", ".001")
	assertNumber(t, "0.252", ".252")
	assertNumber(t, "1.252", "1.252")
	assertNumber(t, "-1.252", "-1.252")
	assertNumber(t, "100e1", "100e1")
	assertNumber(t, "1.50e10", "1.50e10")
	assertNumber(t, "abc", "abc")
	assertNumber(t, "1px", "1px")
}

func TestNumberCopies(t *testing.T) {
	num := []byte("1.0")
	Number(num)
	assert.Equal(t, "1.0", string(num), "input must be left alone")
}

func TestImportant(t *testing.T) {
	var importantTests = []struct {
		value      string
		important  bool
		stripped   string
		compressed string
	}{
		{"red", false, "red", "red"},
		{"red!important", true, "red", "red!important"},
		{"red !important", true, "red", "red!important"},
		{"red ! IMPORTANT ", true, "red", "red!important"},
		{"1px 2px !Important", true, "1px 2px", "1px 2px!important"},
		{"!important", true, "", "!important"},
		{"red !imp", false, "red !imp", "red !imp"},
		{"\"!important\" x", false, "\"!important\" x", "\"!important\" x"},
	}
	for _, tt := range importantTests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.important, IsImportant(tt.value))
			assert.Equal(t, tt.stripped, StripImportant(tt.value))
			assert.Equal(t, tt.compressed, CompressImportant(tt.value))
		})
	}
}
