package css

import (
	"bufio"
	"io"

	"github.com/tdewolff/csstidy"
)

// Write prints a stylesheet without superfluous whitespace. Rules without declarations are left out.
func Write(w io.Writer, sheet *csstidy.Stylesheet) error {
	bw := bufio.NewWriter(w)
	for _, rule := range sheet.Imports {
		bw.WriteString(rule)
		bw.WriteByte(';')
	}
	for _, medium := range sheet.Media() {
		rs, _ := sheet.Get(medium)
		if isEmpty(rs) {
			continue
		}
		if medium != csstidy.DefaultMedium {
			bw.WriteString(medium)
			bw.WriteByte('{')
		}
		for _, selector := range rs.Selectors() {
			decl, _ := rs.Get(selector)
			if decl.Len() == 0 {
				continue
			}
			bw.WriteString(selector)
			bw.WriteByte('{')
			semicolon := false
			decl.Each(func(property, value string) {
				if semicolon {
					bw.WriteByte(';')
				}
				bw.WriteString(property)
				bw.WriteByte(':')
				bw.WriteString(value)
				semicolon = true
			})
			bw.WriteByte('}')
		}
		if medium != csstidy.DefaultMedium {
			bw.WriteByte('}')
		}
	}
	return bw.Flush()
}

func isEmpty(rs *csstidy.RuleSet) bool {
	for _, selector := range rs.Selectors() {
		if decl, _ := rs.Get(selector); 0 < decl.Len() {
			return false
		}
	}
	return true
}
