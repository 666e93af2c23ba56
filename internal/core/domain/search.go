package domain

import "time"

// MatchType identifies the ranking stage that produced a match.
type MatchType string

// Match types, one per scoring signal.
const (
	MatchExact          MatchType = "exact"
	MatchSubstring      MatchType = "substring"
	MatchURL            MatchType = "url"
	MatchToken          MatchType = "token"
	MatchKeywordExact   MatchType = "keyword_exact"
	MatchKeywordPartial MatchType = "keyword_partial"
	MatchContent        MatchType = "content"
	MatchSection        MatchType = "section"
	MatchFuzzy          MatchType = "fuzzy"
	MatchSynonym        MatchType = "synonym"
	MatchNGram          MatchType = "ngram"
	MatchBoost          MatchType = "boost"
)

// String returns the string representation.
func (m MatchType) String() string {
	return string(m)
}

// MatchDetail explains one reason a document matched.
// Details are diagnostic only and never influence ordering.
type MatchDetail struct {
	// Type is the stage that matched.
	Type MatchType `json:"matchType"`

	// Field is the document field that matched (title, href, keywords, content, section).
	Field string `json:"field"`

	// Term is the query term or expanded term that matched.
	Term string `json:"term"`
}

// MatchResult is a scored document produced by a single ranking call.
type MatchResult struct {
	// Document is the matched document.
	Document Document

	// Score is the aggregate relevance score. Always positive for returned results.
	Score float64

	// Details lists the matches in the order the stages found them.
	Details []MatchDetail
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results.
	Limit int

	// Offset is the number of results to skip.
	Offset int

	// Sections filters results to specific sections.
	Sections []string

	// Explain keeps match details on the returned results.
	Explain bool
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Document is the matched document.
	Document Document `json:"document"`

	// Score is the relevance score.
	Score float64 `json:"score"`

	// Snippet is a bounded excerpt of the content around the first match.
	Snippet string `json:"snippet"`

	// Details explains the match. Only populated when Explain is set.
	Details []MatchDetail `json:"matchDetails,omitempty"`
}

// QueryRecord is one entry of the query log.
type QueryRecord struct {
	// ID uniquely identifies the record.
	ID string `json:"id"`

	// Query is the raw query text.
	Query string `json:"query"`

	// ResultCount is the number of ranked results before pagination.
	ResultCount int `json:"result_count"`

	// TopHref is the href of the best result, empty when nothing matched.
	TopHref string `json:"top_href,omitempty"`

	// Duration is how long ranking took.
	Duration time.Duration `json:"duration"`

	// CreatedAt is when the query ran.
	CreatedAt time.Time `json:"created_at"`
}
