package ranking

import (
	"strings"
	"unicode"
)

// stopWords are dropped from content before token matching.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {},
	"by": {}, "can": {}, "do": {}, "for": {}, "from": {}, "has": {}, "have": {}, "how": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"or": {}, "so": {}, "that": {}, "the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"this": {}, "to": {}, "was": {}, "we": {}, "what": {}, "when": {}, "which": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// IsStopWord reports whether word is ignored when indexing content.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Tokenize lowercases text and splits it on whitespace.
// Leading and trailing punctuation is trimmed from each token, and
// repeated tokens are kept once in first-seen order.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, isNotAlphanumeric)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Words splits lowercased text on any non-alphanumeric rune.
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), isNotAlphanumeric)
}

// ContentTerms returns the stop-word-stripped word set of text.
func ContentTerms(text string) map[string]struct{} {
	words := Words(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if IsStopWord(w) {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Clean lowercases text and keeps only letters and digits.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify joins the whitespace-separated fields of text with hyphens.
func Slugify(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), "-")
}

// NGrams returns the distinct overlapping n-rune substrings of text in order.
// Text shorter than n yields no n-grams.
func NGrams(text string, n int) []string {
	runes := []rune(text)
	if n <= 0 || len(runes) < n {
		return nil
	}
	grams := make([]string, 0, len(runes)-n+1)
	seen := make(map[string]struct{}, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		g := string(runes[i : i+n])
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		grams = append(grams, g)
	}
	return grams
}

func isNotAlphanumeric(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
