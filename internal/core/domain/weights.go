package domain

// Weights groups every numeric constant used by the ranking pipeline.
// The defaults are a starting point meant to be tuned against the query log.
type Weights struct {
	// ExactTitle is added when the title equals the query.
	ExactTitle float64

	// TitleSubstring is added when the title contains the query.
	TitleSubstring float64

	// URL is added when the slugified href contains the query.
	URL float64

	// TokenTitle is added per query token found in the title.
	TokenTitle float64

	// TokenURL is added per query token found in the href.
	TokenURL float64

	// KeywordExact is added per query token equal to a keyword.
	KeywordExact float64

	// KeywordPartial is added per query token contained in a keyword.
	KeywordPartial float64

	// Content is added per query token present in the content token set.
	Content float64

	// Section is added per query token contained in the section label.
	Section float64

	// FuzzyTitle is added per query token close to a title word.
	FuzzyTitle float64

	// FuzzyKeyword is added per query token close to a keyword.
	FuzzyKeyword float64

	// FuzzyThreshold is the minimum normalised similarity for a fuzzy match.
	FuzzyThreshold float64

	// FuzzyMaxLenDiff bounds the length difference of fuzzy candidates.
	FuzzyMaxLenDiff int

	// SynonymTitle is added per query token whose expansion appears in the title.
	SynonymTitle float64

	// SynonymKeyword is added per query token whose expansion matches a keyword.
	SynonymKeyword float64

	// SynonymContent is added per query token whose expansion appears in the content.
	SynonymContent float64

	// NGramSize is the length of the substrings used for partial credit.
	NGramSize int

	// NGramCap is the ceiling of the n-gram bonus.
	NGramCap float64

	// MultiMatchFactor scales the boost per distinct matched term.
	MultiMatchFactor float64

	// CuratedBoost multiplies the score of allow-listed documents.
	CuratedBoost float64
}

// DefaultWeights returns the stock ranking weights.
func DefaultWeights() Weights {
	return Weights{
		ExactTitle:       200,
		TitleSubstring:   100,
		URL:              80,
		TokenTitle:       40,
		TokenURL:         30,
		KeywordExact:     35,
		KeywordPartial:   20,
		Content:          15,
		Section:          10,
		FuzzyTitle:       25,
		FuzzyKeyword:     15,
		FuzzyThreshold:   0.75,
		FuzzyMaxLenDiff:  3,
		SynonymTitle:     20,
		SynonymKeyword:   12,
		SynonymContent:   8,
		NGramSize:        3,
		NGramCap:         30,
		MultiMatchFactor: 0.1,
		CuratedBoost:     1.2,
	}
}

// Validate reports whether the weights can drive a ranking.
// Weights may be zero but never negative, and the threshold must be a ratio.
func (w Weights) Validate() error {
	for _, v := range []float64{
		w.ExactTitle, w.TitleSubstring, w.URL, w.TokenTitle, w.TokenURL,
		w.KeywordExact, w.KeywordPartial, w.Content, w.Section,
		w.FuzzyTitle, w.FuzzyKeyword, w.SynonymTitle, w.SynonymKeyword,
		w.SynonymContent, w.NGramCap, w.MultiMatchFactor, w.CuratedBoost,
	} {
		if v < 0 {
			return ErrInvalidInput
		}
	}
	if w.FuzzyThreshold <= 0 || w.FuzzyThreshold > 1 {
		return ErrInvalidInput
	}
	if w.FuzzyMaxLenDiff < 0 || w.NGramSize < 1 {
		return ErrInvalidInput
	}
	return nil
}
