package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize lowercases and strips all whitespace so loosely formatted
// portal labels compare reliably.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, "")
}

func ContainsAny(s string, needles []string) bool {
	s = Normalize(s)
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
