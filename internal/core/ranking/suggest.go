package ranking

import (
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// Suggest proposes a corrected query when some tokens look misspelled.
// Each token is replaced by its lexicon correction, or by the closest
// title word or keyword in the corpus. It returns nil when every token
// is already known or nothing close enough exists.
func (r *Ranker) Suggest(query string, corpus []domain.Document) []string {
	q := ParseQuery(query)
	if q.IsEmpty() {
		return nil
	}

	vocab, known := vocabulary(corpus)
	corrected := make([]string, len(q.Tokens))
	changed := false
	for i, tok := range q.Tokens {
		corrected[i] = tok
		if fixed, ok := r.lexicon.Correct(tok); ok {
			corrected[i], changed = fixed, true
			continue
		}
		if _, ok := known[tok]; ok {
			continue
		}
		if alt, ok := r.closest(tok, vocab); ok {
			corrected[i], changed = alt, true
		}
	}

	if !changed {
		return nil
	}
	return []string{strings.Join(corrected, " ")}
}

func (r *Ranker) closest(tok string, vocab []string) (string, bool) {
	best, bestSim := "", 0.0
	for _, w := range vocab {
		if !isClose(tok, w, r.weights) {
			continue
		}
		if sim := Similarity(tok, w); sim > bestSim {
			best, bestSim = w, sim
		}
	}
	return best, best != ""
}

// vocabulary collects title words, keywords and content terms in corpus order.
// Only title words and keywords are offered as corrections.
func vocabulary(corpus []domain.Document) ([]string, map[string]struct{}) {
	var vocab []string
	known := make(map[string]struct{})
	offer := func(w string) {
		if _, ok := known[w]; ok || len([]rune(w)) < 3 {
			known[w] = struct{}{}
			return
		}
		known[w] = struct{}{}
		vocab = append(vocab, w)
	}
	for _, doc := range corpus {
		for _, w := range Words(doc.Title) {
			offer(w)
		}
		for _, k := range doc.Keywords {
			offer(strings.ToLower(strings.TrimSpace(k)))
		}
	}
	for _, doc := range corpus {
		for w := range ContentTerms(doc.Content) {
			known[w] = struct{}{}
		}
	}
	return vocab, known
}
