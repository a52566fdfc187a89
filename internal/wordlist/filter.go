package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter. English lists keep only
// lowercase ASCII words so every word is typeable on a plain US layout.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return isLowerASCII
	default:
		return hasNoSpace
	}
}

func isLowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// hasNoSpace rejects entries that would split into several words in the
// rolling window.
func hasNoSpace(word string) bool {
	if word == "" {
		return false
	}
	return strings.IndexFunc(word, unicode.IsSpace) < 0
}
