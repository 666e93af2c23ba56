package ranking

import (
	"strings"
	"unicode"
)

// Ellipsis marks a truncated end of a snippet.
const Ellipsis = "..."

// Snippet returns at most maxLen runes of content centred on the first
// occurrence of the query, or failing that the earliest occurrence of any
// query token. Truncated ends are marked with Ellipsis. When nothing
// matches the leading slice is returned. Whitespace is collapsed first,
// and a non-positive maxLen disables truncation.
func Snippet(content, query string, maxLen int) string {
	text := []rune(strings.Join(strings.Fields(content), " "))
	if maxLen <= 0 || len(text) <= maxLen {
		return string(text)
	}

	lower := make([]rune, len(text))
	for i, r := range text {
		lower[i] = unicode.ToLower(r)
	}

	pos, length := locate(lower, query)
	start := 0
	if pos >= 0 {
		start = pos + length/2 - maxLen/2
		start = max(0, min(start, len(text)-maxLen))
	}
	end := start + maxLen

	var b strings.Builder
	if start > 0 {
		b.WriteString(Ellipsis)
	}
	b.WriteString(strings.TrimSpace(string(text[start:end])))
	if end < len(text) {
		b.WriteString(Ellipsis)
	}
	return b.String()
}

// locate finds the query, then its earliest token, in lowered text.
// It returns the rune offset and rune length of the match, or -1.
func locate(lower []rune, query string) (int, int) {
	q := ParseQuery(query)
	if q.IsEmpty() {
		return -1, 0
	}
	if i := indexRunes(lower, []rune(q.Text)); i >= 0 {
		return i, len([]rune(q.Text))
	}

	best, bestLen := -1, 0
	for _, tok := range q.Tokens {
		needle := []rune(tok)
		if i := indexRunes(lower, needle); i >= 0 && (best < 0 || i < best) {
			best, bestLen = i, len(needle)
		}
	}
	return best, bestLen
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}
