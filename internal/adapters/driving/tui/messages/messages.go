// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
// Suggestions is only filled when the query matched nothing.
type SearchCompleted struct {
	Query       string
	Results     []domain.SearchResult
	Suggestions []string
	Err         error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewDocuments lists every page of the corpus.
	ViewDocuments
	// ViewDocContent shows a single page.
	ViewDocContent
	// ViewHistory lists recent queries.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewDocuments:
		return "documents"
	case ViewDocContent:
		return "doc_content"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// DocumentsLoaded carries the corpus and its sections.
type DocumentsLoaded struct {
	Documents []domain.Document
	Sections  []string
	Err       error
}

// DocumentSelected signals a page was chosen for reading.
// From is the view to return to.
type DocumentSelected struct {
	Document domain.Document
	From     ViewType
}

// DocumentContentLoaded carries the latest copy of a page.
type DocumentContentLoaded struct {
	Href     string
	Document *domain.Document
	Err      error
}

// HistoryLoaded carries recent queries.
type HistoryLoaded struct {
	Records []domain.QueryRecord
	Err     error
}

// RunQuery asks the search view to run a query, for example one picked from history.
type RunQuery struct {
	Query string
}
