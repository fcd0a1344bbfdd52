package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/csstidy"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrParse is returned when the tokenizer reports an error other than the end of the input.
var ErrParse = errors.New("parse error")

// Parse reads a stylesheet and passes every declaration through o.Property. At-rules without a block are kept in
// Imports, block at-rules such as @media become media and block at-rules that directly hold declarations, such as
// @font-face, become rules of the enclosing medium.
func Parse(r io.Reader, o *Optimiser) (*csstidy.Stylesheet, error) {
	sheet := csstidy.NewStylesheet()
	p := css.NewParser(parse.NewInput(r), false)

	var media []string // at-rule blocks, innermost last
	var selectors []string
	var decl *csstidy.Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err == io.EOF {
				return sheet, nil
			} else if err != nil {
				return sheet, fmt.Errorf("%w: %v", ErrParse, err)
			}
			// recoverable, the invalid tokens are dropped
		case css.AtRuleGrammar:
			sheet.Imports = append(sheet.Imports, text(data, p.Values()))
		case css.BeginAtRuleGrammar:
			media = append(media, text(data, p.Values()))
		case css.EndAtRuleGrammar:
			if 0 < len(media) {
				if rs, ok := sheet.Get(media[len(media)-1]); ok && rs.Len() == 0 {
					sheet.Delete(media[len(media)-1])
				}
				media = media[:len(media)-1]
			}
			decl = nil
		case css.QualifiedRuleGrammar:
			selectors = append(selectors, text(data, p.Values()))
		case css.BeginRulesetGrammar:
			selectors = append(selectors, text(data, p.Values()))
			decl = sheet.RuleSet(medium(media)).Declaration(selectorList(selectors))
			selectors = selectors[:0]
		case css.EndRulesetGrammar:
			decl = nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if decl == nil {
				if len(media) == 0 {
					continue // stray declaration
				}
				// block at-rule without rulesets
				decl = sheet.RuleSet(medium(media[:len(media)-1])).Declaration(media[len(media)-1])
			}
			o.Property(decl, string(data), text(nil, p.Values()))
		}
	}
}

// selectorList joins selector groups with commas and no surrounding whitespace.
func selectorList(groups []string) string {
	var list []string
	for _, group := range groups {
		for _, selector := range csstidy.Explode(',', group) {
			list = append(list, strings.TrimSpace(selector))
		}
	}
	return strings.Join(list, ",")
}

func medium(media []string) string {
	if len(media) == 0 {
		return csstidy.DefaultMedium
	}
	return media[len(media)-1]
}

// text concatenates the tokens, collapsing whitespace into single spaces and trimming the result.
func text(data []byte, values []css.Token) string {
	sb := strings.Builder{}
	sb.Write(data)
	space := false
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken || v.TokenType == css.CommentToken {
			space = true
			continue
		}
		if space && 0 < sb.Len() {
			sb.WriteByte(' ')
		}
		space = false
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}
