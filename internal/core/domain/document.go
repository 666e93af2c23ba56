package domain

import "strings"

// Document is a single page of the searchable corpus.
// Documents are built once per corpus load and never mutated by search.
type Document struct {
	// Title is the short human-readable page title.
	Title string `json:"title"`

	// Href is the page path. It is unique within a corpus.
	Href string `json:"href"`

	// Section is a coarse category label such as "Guides" or "Blog".
	Section string `json:"section"`

	// Keywords are hand-curated tags. Order is irrelevant.
	Keywords []string `json:"keywords,omitempty"`

	// Content is the body text used for matching and snippets.
	Content string `json:"content"`

	// Source names the corpus source that produced the document.
	Source string `json:"source,omitempty"`
}

// HasKeyword reports whether the document carries the keyword, ignoring case.
func (d Document) HasKeyword(keyword string) bool {
	for _, k := range d.Keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

// InSection reports whether the document belongs to one of the given sections.
// An empty list matches every document.
func (d Document) InSection(sections []string) bool {
	if len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if strings.EqualFold(strings.TrimSpace(s), d.Section) {
			return true
		}
	}
	return false
}
