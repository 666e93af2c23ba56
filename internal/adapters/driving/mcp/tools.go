package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query    string   `json:"query" jsonschema:"the search query"`
	Limit    int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	Offset   int      `json:"offset,omitempty" jsonschema:"number of results to skip"`
	Sections []string `json:"sections,omitempty" jsonschema:"only return pages in these sections"`
	Explain  bool     `json:"explain,omitempty" jsonschema:"include why each page matched"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title    string               `json:"title"`
	Href     string               `json:"href"`
	Section  string               `json:"section,omitempty"`
	Score    float64              `json:"score"`
	Snippet  string               `json:"snippet,omitempty"`
	Resource string               `json:"resource"`
	Details  []domain.MatchDetail `json:"details,omitempty"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"the possibly misspelled query"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []string `json:"suggestions"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the agent framework documentation and return the best matching pages",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest a corrected query when words look misspelled",
	}, s.handleSuggest)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if input.Query == "" {
		return nil, SearchOutput{}, errors.New("query is required")
	}

	opts := domain.SearchOptions{
		Limit:    input.Limit,
		Offset:   input.Offset,
		Sections: input.Sections,
		Explain:  input.Explain,
	}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Title:    results[i].Document.Title,
			Href:     results[i].Document.Href,
			Section:  results[i].Document.Section,
			Score:    results[i].Score,
			Snippet:  results[i].Snippet,
			Resource: documentURI(results[i].Document.Href),
			Details:  results[i].Details,
		}
	}

	return nil, output, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.ports.Search.Suggest(ctx, input.Query)
	if err != nil {
		return nil, SuggestOutput{}, err
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return nil, SuggestOutput{Suggestions: suggestions}, nil
}
