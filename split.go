package csstidy

// Explode splits s on every occurrence of sep that is not escaped by a backslash and not inside a quoted
// string or a parenthesized term. Quotes and parentheses are kept in the segments. Parentheses may nest.
// The result has at least one element, empty segments are kept.
func Explode(sep byte, s string) []string {
	segments := make([]string, 0, 4)
	start := 0
	var quote byte // closing character while in a quoted state
	depth := 0     // parenthesis nesting
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped(s, i) {
			continue
		}
		if quote == 0 {
			if c == sep {
				segments = append(segments, s[start:i])
				start = i + 1
			} else if c == '"' || c == '\'' {
				quote = c
			} else if c == '(' {
				quote = ')'
				depth = 1
			}
		} else if quote == ')' {
			if c == '(' {
				depth++
			} else if c == ')' {
				depth--
				if depth == 0 {
					quote = 0
				}
			}
		} else if c == quote {
			quote = 0
		}
	}
	return append(segments, s[start:])
}

// escaped returns true if the character at i is preceded by an odd number of backslashes.
func escaped(s string, i int) bool {
	n := 0
	for j := i - 1; 0 <= j && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
