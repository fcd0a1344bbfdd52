package css

import (
	"strings"

	"github.com/tdewolff/csstidy"
	"github.com/tdewolff/parse/v2/strconv"
)

// Number is an analysed numeric token, Value is the minified magnitude and Unit the lower-cased unit or empty.
type Number struct {
	Value string
	Unit  string
}

// IsZero returns true if the magnitude is zero.
func (n Number) IsZero() bool {
	return n.Value == "0"
}

func (n Number) String() string {
	return n.Value + n.Unit
}

// AnalyseNumber splits a token into magnitude and unit. Tokens that start with a letter, whose unit is not the last
// thing in the token, or whose remainder is not a number are rejected.
func (t *Tables) AnalyseNumber(token string) (Number, bool) {
	if token == "" || isAlpha(token[0]) {
		return Number{}, false
	}

	num, unit := token, ""
	lower := strings.ToLower(token)
	for _, u := range t.units {
		if i := strings.Index(lower, u); i != -1 && i == len(lower)-len(u) {
			num, unit = token[:i], u
			break
		}
	}

	if _, n := strconv.ParseFloat([]byte(num)); n == 0 || n != len(num) {
		return Number{}, false
	}
	return Number{string(csstidy.Number([]byte(num))), unit}, true
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return s != ""
}
