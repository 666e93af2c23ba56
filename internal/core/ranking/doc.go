// Package ranking scores a free-text query against an in-memory corpus.
//
// Ranking is a pure computation. A Ranker runs a Pipeline of independent
// Scorers over every document, sums their contributions, applies the
// multi-match and curated boosts, and returns the positive-scoring documents
// in descending order. Ties keep corpus order.
//
// The stages of the default pipeline are:
//
//   - TitleScorer: exact or substring title match
//   - URLScorer: slugified query found in the href
//   - TokenScorer: per-token title, href, keyword, content and section hits
//   - FuzzyScorer: edit-distance matches against title words and keywords
//   - SynonymScorer: lexicon expansions found in title, keywords or content
//   - NGramScorer: trigram partial credit, capped
//
// Weights and the Lexicon are passed in explicitly. Nothing in this package
// holds mutable state, so a Ranker is safe for concurrent use.
package ranking
