package ranking

import (
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// Query is a parsed search query.
type Query struct {
	// Text is the lowercased, trimmed query.
	Text string

	// Tokens are the distinct whitespace-delimited tokens of Text.
	Tokens []string

	// Cleaned is Text reduced to letters and digits.
	Cleaned string

	tokenSet map[string]struct{}
}

// ParseQuery prepares raw user input for scoring.
func ParseQuery(raw string) Query {
	text := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens)+1)
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	if text != "" {
		set[text] = struct{}{}
	}
	return Query{
		Text:     text,
		Tokens:   tokens,
		Cleaned:  Clean(text),
		tokenSet: set,
	}
}

// IsEmpty reports whether the query has nothing to match.
func (q Query) IsEmpty() bool {
	return len(q.Tokens) == 0
}

// Contains reports whether term is the query or one of its tokens.
func (q Query) Contains(term string) bool {
	_, ok := q.tokenSet[term]
	return ok
}

// Candidate is a document with its fields lowercased and indexed for scoring.
type Candidate struct {
	Document domain.Document

	Title      string
	TitleWords []string
	Href       string
	Section    string
	Keywords   []string
	Content    string
	Terms      map[string]struct{}

	CleanTitle   string
	CleanContent string
}

// NewCandidate prepares doc for scoring. The document is copied, never modified.
func NewCandidate(doc domain.Document) *Candidate {
	keywords := make([]string, 0, len(doc.Keywords))
	for _, k := range doc.Keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return &Candidate{
		Document:     doc,
		Title:        strings.ToLower(strings.TrimSpace(doc.Title)),
		TitleWords:   Words(doc.Title),
		Href:         strings.ToLower(doc.Href),
		Section:      strings.ToLower(doc.Section),
		Keywords:     keywords,
		Content:      strings.ToLower(doc.Content),
		Terms:        ContentTerms(doc.Content),
		CleanTitle:   Clean(doc.Title),
		CleanContent: Clean(doc.Content),
	}
}

// HasTerm reports whether the content holds term. Single words are looked
// up in the stop-word-stripped word set; phrases fall back to substring search.
func (c *Candidate) HasTerm(term string) bool {
	if strings.ContainsAny(term, " -") {
		return strings.Contains(c.Content, term)
	}
	_, ok := c.Terms[term]
	return ok
}

// Contribution is the score and explanation produced by one Scorer.
type Contribution struct {
	Score   float64
	Details []domain.MatchDetail
}

// Add records a match worth weight. Zero weights record nothing,
// so a disabled signal cannot influence the multi-match boost.
func (c *Contribution) Add(weight float64, matchType domain.MatchType, field, term string) {
	if weight <= 0 {
		return
	}
	c.Score += weight
	c.Details = append(c.Details, domain.MatchDetail{Type: matchType, Field: field, Term: term})
}

// Merge folds other into c.
func (c *Contribution) Merge(other Contribution) {
	c.Score += other.Score
	c.Details = append(c.Details, other.Details...)
}

// Scorer computes one additive ranking signal.
type Scorer interface {
	// Name identifies the scorer in logs.
	Name() string

	// Score returns the contribution of this signal for one document.
	Score(q *Query, c *Candidate) Contribution
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc struct {
	ID string
	Fn func(q *Query, c *Candidate) Contribution
}

// Name returns the scorer ID.
func (f ScorerFunc) Name() string { return f.ID }

// Score calls Fn.
func (f ScorerFunc) Score(q *Query, c *Candidate) Contribution { return f.Fn(q, c) }

// Pipeline sums the contributions of its scorers in order.
type Pipeline struct {
	scorers []Scorer
}

// NewPipeline creates a pipeline with the given scorers.
func NewPipeline(scorers ...Scorer) *Pipeline {
	return &Pipeline{scorers: scorers}
}

// DefaultPipeline returns the six standard stages configured with weights and lexicon.
func DefaultPipeline(weights domain.Weights, lexicon domain.Lexicon) *Pipeline {
	return NewPipeline(
		TitleScorer{Weights: weights},
		URLScorer{Weights: weights},
		TokenScorer{Weights: weights},
		FuzzyScorer{Weights: weights},
		SynonymScorer{Weights: weights, Lexicon: lexicon},
		NGramScorer{Weights: weights},
	)
}

// Score runs every scorer and returns the summed contribution.
func (p *Pipeline) Score(q *Query, c *Candidate) Contribution {
	var total Contribution
	for _, s := range p.scorers {
		total.Merge(s.Score(q, c))
	}
	return total
}

// Add appends a scorer to the pipeline.
func (p *Pipeline) Add(s Scorer) {
	p.scorers = append(p.scorers, s)
}

// Len returns the number of scorers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.scorers)
}

// Names returns the scorer names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.scorers))
	for i, s := range p.scorers {
		names[i] = s.Name()
	}
	return names
}
