package ranking

import (
	"sort"
	"strconv"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// Ranker orders a corpus by relevance to a query.
type Ranker struct {
	weights  domain.Weights
	lexicon  domain.Lexicon
	curated  map[string]struct{}
	pipeline *Pipeline
}

// NewRanker creates a ranker using the default pipeline.
// Documents whose href is listed in curated get the curated boost.
func NewRanker(weights domain.Weights, lexicon domain.Lexicon, curated []string) *Ranker {
	set := make(map[string]struct{}, len(curated))
	for _, href := range curated {
		set[href] = struct{}{}
	}
	return &Ranker{
		weights:  weights,
		lexicon:  lexicon,
		curated:  set,
		pipeline: DefaultPipeline(weights, lexicon),
	}
}

// NewDefaultRanker creates a ranker with the stock weights, lexicon and curated list.
func NewDefaultRanker() *Ranker {
	return NewRanker(domain.DefaultWeights(), domain.DefaultLexicon(), domain.DefaultCurated())
}

// SetPipeline replaces the scoring pipeline. Call before the ranker is shared.
func (r *Ranker) SetPipeline(p *Pipeline) {
	r.pipeline = p
}

// Weights returns the weights the ranker was built with.
func (r *Ranker) Weights() domain.Weights {
	return r.weights
}

// Lexicon returns the lexicon the ranker was built with.
func (r *Ranker) Lexicon() domain.Lexicon {
	return r.lexicon
}

// Rank scores every document and returns those with a positive score,
// best first. Equal scores keep corpus order. Documents repeating an
// earlier href are ignored. The corpus is not modified.
func (r *Ranker) Rank(query string, corpus []domain.Document) []domain.MatchResult {
	results := []domain.MatchResult{}
	q := ParseQuery(query)
	if q.IsEmpty() {
		return results
	}

	seen := make(map[string]struct{}, len(corpus))
	for i := range corpus {
		doc := corpus[i]
		if _, dup := seen[doc.Href]; dup {
			continue
		}
		seen[doc.Href] = struct{}{}

		if result, ok := r.score(&q, NewCandidate(doc)); ok {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Search returns the ranked documents without scores.
func (r *Ranker) Search(query string, corpus []domain.Document) []domain.Document {
	ranked := r.Rank(query, corpus)
	docs := make([]domain.Document, len(ranked))
	for i, m := range ranked {
		docs[i] = m.Document
	}
	return docs
}

func (r *Ranker) score(q *Query, c *Candidate) (domain.MatchResult, bool) {
	contrib := r.pipeline.Score(q, c)
	score := contrib.Score
	details := contrib.Details
	if score <= 0 {
		return domain.MatchResult{}, false
	}

	if n := distinctTerms(details); n > 1 && r.weights.MultiMatchFactor > 0 {
		score *= 1 + r.weights.MultiMatchFactor*float64(n)
		details = append(details, domain.MatchDetail{
			Type:  domain.MatchBoost,
			Field: FieldScore,
			Term:  "multi-match x" + strconv.Itoa(n),
		})
	}

	if _, ok := r.curated[c.Document.Href]; ok {
		score *= r.weights.CuratedBoost
		details = append(details, domain.MatchDetail{
			Type:  domain.MatchBoost,
			Field: FieldScore,
			Term:  "curated",
		})
	}

	if score <= 0 {
		return domain.MatchResult{}, false
	}
	return domain.MatchResult{Document: c.Document, Score: score, Details: details}, true
}

// distinctTerms counts the different terms matched by the term-level stages.
// N-gram and boost details describe the whole query and are not counted.
func distinctTerms(details []domain.MatchDetail) int {
	terms := make(map[string]struct{}, len(details))
	for _, d := range details {
		if d.Type == domain.MatchNGram || d.Type == domain.MatchBoost {
			continue
		}
		terms[d.Term] = struct{}{}
	}
	return len(terms)
}
