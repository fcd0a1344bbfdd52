package css

import (
	"regexp"
	"strings"

	"github.com/tdewolff/csstidy"
)

var combinatorRegexp = regexp.MustCompile(`\s*[+>~\s]\s*`)

// MergeSelectors joins rules with equal declarations. Every rule, in order, is compared with all rules that are still
// in the working copy, and the rule together with its matches is replaced by a single rule keyed
// "selector,match1,match2" that is appended at the end. Rules that were already merged away are skipped as anchors.
// At-rules used as selectors, such as @font-face, are never merged.
func MergeSelectors(rs *csstidy.RuleSet) *csstidy.RuleSet {
	work := rs.Copy()
	for _, selector := range rs.Selectors() {
		decl, ok := work.Get(selector)
		if !ok || isAtRule(selector) {
			continue
		}

		var matches []string
		for _, other := range work.Selectors() {
			if other == selector || isAtRule(other) {
				continue
			}
			if otherDecl, _ := work.Get(other); decl.Equal(otherDecl) {
				matches = append(matches, other)
			}
		}
		if len(matches) == 0 {
			continue
		}

		work.Delete(selector)
		for _, match := range matches {
			work.Delete(match)
		}
		work.Set(selector+","+strings.Join(matches, ","), decl)
	}
	return work
}

// DiscardInvalidSelectors returns the rules whose selector list is valid. A selector list is invalid when one of its
// comma separated selectors is empty or has an empty compound around a combinator, as in "a,,b" or "a >".
func DiscardInvalidSelectors(rs *csstidy.RuleSet) *csstidy.RuleSet {
	valid := csstidy.NewRuleSet()
	for _, selector := range rs.Selectors() {
		if IsValidSelector(selector) {
			decl, _ := rs.Get(selector)
			valid.Set(selector, decl)
		}
	}
	return valid
}

// IsValidSelector returns true if no selector of the comma separated list is empty around a combinator.
func IsValidSelector(selector string) bool {
	for _, group := range strings.Split(selector, ",") {
		for _, compound := range combinatorRegexp.Split(strings.TrimSpace(group), -1) {
			if compound == "" {
				return false
			}
		}
	}
	return true
}

func isAtRule(selector string) bool {
	return strings.HasPrefix(selector, "@")
}
