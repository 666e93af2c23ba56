package ranking

import (
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// Field names used in match details.
const (
	FieldTitle    = "title"
	FieldHref     = "href"
	FieldKeywords = "keywords"
	FieldContent  = "content"
	FieldSection  = "section"
	FieldScore    = "score"
)

// TitleScorer rewards a title equal to, or containing, the whole query.
type TitleScorer struct {
	Weights domain.Weights
}

// Name returns "title".
func (TitleScorer) Name() string { return "title" }

// Score implements Scorer.
func (s TitleScorer) Score(q *Query, c *Candidate) Contribution {
	var out Contribution
	switch {
	case c.Title == q.Text:
		out.Add(s.Weights.ExactTitle, domain.MatchExact, FieldTitle, q.Text)
	case strings.Contains(c.Title, q.Text):
		out.Add(s.Weights.TitleSubstring, domain.MatchSubstring, FieldTitle, q.Text)
	}
	return out
}

// URLScorer rewards an href containing the hyphenated query.
type URLScorer struct {
	Weights domain.Weights
}

// Name returns "url".
func (URLScorer) Name() string { return "url" }

// Score implements Scorer.
func (s URLScorer) Score(q *Query, c *Candidate) Contribution {
	var out Contribution
	if strings.Contains(c.Href, Slugify(q.Text)) {
		out.Add(s.Weights.URL, domain.MatchURL, FieldHref, q.Text)
	}
	return out
}

// TokenScorer checks each query token against every field independently.
type TokenScorer struct {
	Weights domain.Weights
}

// Name returns "token".
func (TokenScorer) Name() string { return "token" }

// Score implements Scorer.
func (s TokenScorer) Score(q *Query, c *Candidate) Contribution {
	var out Contribution
	for _, tok := range q.Tokens {
		if strings.Contains(c.Title, tok) {
			out.Add(s.Weights.TokenTitle, domain.MatchToken, FieldTitle, tok)
		}
		if strings.Contains(c.Href, tok) {
			out.Add(s.Weights.TokenURL, domain.MatchToken, FieldHref, tok)
		}
		switch keywordMatch(c.Keywords, tok) {
		case keywordExact:
			out.Add(s.Weights.KeywordExact, domain.MatchKeywordExact, FieldKeywords, tok)
		case keywordPartial:
			out.Add(s.Weights.KeywordPartial, domain.MatchKeywordPartial, FieldKeywords, tok)
		}
		if _, ok := c.Terms[tok]; ok {
			out.Add(s.Weights.Content, domain.MatchContent, FieldContent, tok)
		}
		if c.Section != "" && strings.Contains(c.Section, tok) {
			out.Add(s.Weights.Section, domain.MatchSection, FieldSection, tok)
		}
	}
	return out
}

// FuzzyScorer matches tokens that are within a small edit distance of a
// title word or keyword. Exact equality is left to TokenScorer.
type FuzzyScorer struct {
	Weights domain.Weights
}

// Name returns "fuzzy".
func (FuzzyScorer) Name() string { return "fuzzy" }

// Score implements Scorer.
func (s FuzzyScorer) Score(q *Query, c *Candidate) Contribution {
	var out Contribution
	for _, tok := range q.Tokens {
		if s.anyClose(tok, c.TitleWords) {
			out.Add(s.Weights.FuzzyTitle, domain.MatchFuzzy, FieldTitle, tok)
		}
		if s.anyClose(tok, c.Keywords) {
			out.Add(s.Weights.FuzzyKeyword, domain.MatchFuzzy, FieldKeywords, tok)
		}
	}
	return out
}

func (s FuzzyScorer) anyClose(tok string, words []string) bool {
	for _, w := range words {
		if isClose(tok, w, s.Weights) {
			return true
		}
	}
	return false
}

// isClose reports whether a and b differ by a tolerable typo.
func isClose(a, b string, w domain.Weights) bool {
	if a == b || lengthDiff(a, b) > w.FuzzyMaxLenDiff {
		return false
	}
	return Similarity(a, b) >= w.FuzzyThreshold
}

// SynonymScorer expands each token through the lexicon and looks for the
// related terms. Each field counts at most once per token, and expansions
// already present in the query are skipped, so synonyms stay weaker than
// direct matches.
type SynonymScorer struct {
	Weights domain.Weights
	Lexicon domain.Lexicon
}

// Name returns "synonym".
func (SynonymScorer) Name() string { return "synonym" }

// Score implements Scorer.
func (s SynonymScorer) Score(q *Query, c *Candidate) Contribution {
	var out Contribution
	for _, tok := range q.Tokens {
		var inTitle, inKeywords, inContent bool
		for _, term := range s.Lexicon.Expand(tok) {
			if q.Contains(term) {
				continue
			}
			if !inTitle && strings.Contains(c.Title, term) {
				inTitle = true
				out.Add(s.Weights.SynonymTitle, domain.MatchSynonym, FieldTitle, term)
			}
			if !inKeywords && keywordMatch(c.Keywords, term) != keywordNone {
				inKeywords = true
				out.Add(s.Weights.SynonymKeyword, domain.MatchSynonym, FieldKeywords, term)
			}
			if !inContent && c.HasTerm(term) {
				inContent = true
				out.Add(s.Weights.SynonymContent, domain.MatchSynonym, FieldContent, term)
			}
		}
	}
	return out
}

// NGramScorer gives partial credit for trigrams of the cleaned query found in
// the title (full weight) or content (half weight).
type NGramScorer struct {
	Weights domain.Weights
}

// Name returns "ngram".
func (NGramScorer) Name() string { return "ngram" }

// Score implements Scorer.
func (s NGramScorer) Score(q *Query, c *Candidate) Contribution {
	var out Contribution
	grams := NGrams(q.Cleaned, s.Weights.NGramSize)
	if len(grams) == 0 {
		return out
	}

	var titleHits, contentHits float64
	for _, g := range grams {
		switch {
		case strings.Contains(c.CleanTitle, g):
			titleHits++
		case strings.Contains(c.CleanContent, g):
			contentHits += 0.5
		}
	}

	hits := titleHits + contentHits
	if hits == 0 {
		return out
	}
	bonus := min(s.Weights.NGramCap, hits/float64(len(grams))*s.Weights.NGramCap)
	field := FieldTitle
	if contentHits > titleHits {
		field = FieldContent
	}
	out.Add(bonus, domain.MatchNGram, field, q.Cleaned)
	return out
}

type keywordKind int

const (
	keywordNone keywordKind = iota
	keywordPartial
	keywordExact
)

// keywordMatch returns the strongest relation between term and any keyword.
func keywordMatch(keywords []string, term string) keywordKind {
	best := keywordNone
	for _, k := range keywords {
		if k == term {
			return keywordExact
		}
		if strings.Contains(k, term) {
			best = keywordPartial
		}
	}
	return best
}
