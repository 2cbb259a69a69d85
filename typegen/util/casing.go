package util

import (
	"unicode"
	"unicode/utf8"
)

// ToTitleCase upper-cases the first rune of s and keeps the rest as-is.
// "page" -> "Page", "getDOM" -> "GetDOM", "DOM" -> "DOM".
//
// Unlike strings.Title or x/text/cases this never lowercases the tail, so
// protocol identifiers such as "CSS" or "requestWillBeSent" keep their shape.
func ToTitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
