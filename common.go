package csstidy

import (
	"strconv"
	"strings"
)

// Important is the canonical importance marker that is appended to values.
const Important = "!important"

// Number minifies a given byte slice containing a number and removes superfluous characters.
// It returns the input when it is not a number. The result is always a newly allocated slice.
func Number(num []byte) []byte {
	f, err := strconv.ParseFloat(string(num), 64)
	if err != nil {
		return num
	}
	if f == 0 {
		return []byte("0")
	}
	num = append([]byte{}, num...)
	if num[0] == '-' {
		n := 1
		for n < len(num) && num[n] == '0' {
			n++
		}
		num = num[n-1:]
		num[0] = '-'
	} else {
		if num[0] == '+' {
			num = num[1:]
		}
		// trim 0 left
		for 1 < len(num) && num[0] == '0' && num[1] != 'e' && num[1] != 'E' {
			num = num[1:]
		}
	}
	for _, c := range num {
		if c == 'e' || c == 'E' {
			return num // leave the mantissa alone
		}
	}
	// trim 0 right
	for i, digit := range num {
		if digit == '.' {
			j := len(num) - 1
			for ; j > i; j-- {
				if num[j] == '0' {
					num = num[:len(num)-1]
				} else {
					break
				}
			}
			if j == i {
				num = num[:len(num)-1] // remove .
			}
			break
		}
	}
	return num
}

// IsImportant returns true if the value ends with an importance marker, whitespace between the exclamation mark
// and the keyword is allowed and the keyword is case-insensitive.
func IsImportant(value string) bool {
	_, ok := splitImportant(value)
	return ok
}

// StripImportant returns the value without its importance marker and surrounding whitespace.
// Values without a marker are returned unchanged.
func StripImportant(value string) string {
	base, _ := splitImportant(value)
	return base
}

// CompressImportant rewrites the importance marker of value into its canonical form.
func CompressImportant(value string) string {
	if base, ok := splitImportant(value); ok {
		return base + Important
	}
	return value
}

func splitImportant(value string) (string, bool) {
	i := strings.LastIndexByte(value, '!')
	if i == -1 || !strings.EqualFold(strings.TrimSpace(value[i+1:]), "important") {
		return value, false
	}
	return strings.TrimSpace(value[:i]), true
}
