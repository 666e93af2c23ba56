package ranking

import (
	"sort"
	"strings"
)

// Highlight passes every case-insensitive occurrence of the query's
// non-stop-word tokens in text through mark. Longer tokens win over
// their prefixes. Text whose lowercase form changes byte length is
// returned untouched.
func Highlight(text, query string, mark func(string) string) string {
	terms := make([]string, 0)
	for _, tok := range Tokenize(query) {
		if !IsStopWord(tok) {
			terms = append(terms, tok)
		}
	}
	if len(terms) == 0 || text == "" || mark == nil {
		return text
	}
	sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })

	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		matched := ""
		for _, t := range terms {
			if strings.HasPrefix(lower[i:], t) {
				matched = t
				break
			}
		}
		if matched == "" {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteString(mark(text[i : i+len(matched)]))
		i += len(matched)
	}
	return b.String()
}
