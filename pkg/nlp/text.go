package nlp

import "strings"

// Lower prepares extracted text for keyword lookup. Only the case is folded:
// punctuation is kept so that entries like "c++" and "c#" stay matchable.
func Lower(s string) string {
	return strings.ToLower(s)
}

// ContainsKeyword reports whether keyword occurs anywhere in lowered text.
// There is no word-boundary check: "java" is found inside "javascript".
func ContainsKeyword(loweredText, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	return strings.Contains(loweredText, keyword)
}
