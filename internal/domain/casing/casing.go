// Package casing converts underscore-separated identifiers to camel case.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator splits the words of a snake_case identifier.
const Separator = "_"

// IsSnakeCase reports whether name still contains a word separator.
func IsSnakeCase(name string) bool {
	return strings.Contains(name, Separator)
}

// ToCamel converts a snake_case name to camelCase. The first word is kept
// verbatim, every following word gets its first rune upper-cased, and empty
// words produced by leading, trailing or repeated separators are dropped.
func ToCamel(name string) string {
	words := strings.Split(name, Separator)
	if len(words) == 1 {
		return name
	}

	var b strings.Builder

	b.Grow(len(name))
	b.WriteString(words[0])

	for _, word := range words[1:] {
		if word == "" {
			continue
		}

		b.WriteString(upperFirst(word))
	}

	return b.String()
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}

	return string(unicode.ToUpper(r)) + word[size:]
}
