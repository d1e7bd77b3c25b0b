package irc

import (
	"regexp"
	"strings"
)

// matchMask reports whether input matches mask, where "*" expands to any
// run of characters and "?" to exactly one. The match is end-anchored
// only: a mask with no wildcards matches just the suffix equal to itself,
// not the whole string.
func matchMask(input, mask string) bool {
	pattern := strings.NewReplacer("*", ".*", "?", ".").Replace(mask) + "$"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(input)
}
