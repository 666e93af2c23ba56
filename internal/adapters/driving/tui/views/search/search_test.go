package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []string
	err         error
	queries     []string
	suggested   []string
}

func (m *mockSearchService) Search(_ context.Context, query string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	return m.results, m.err
}

func (m *mockSearchService) Suggest(_ context.Context, query string) ([]string, error) {
	m.suggested = append(m.suggested, query)
	return m.suggestions, nil
}

func agentsResult() domain.SearchResult {
	return domain.SearchResult{
		Document: domain.Document{Title: "Agents", Href: "/docs/concepts/agents", Section: "Concepts"},
		Score:    150,
		Snippet:  "An agent combines a model with tools.",
	}
}

func typeText(v *View, text string) *View {
	for _, r := range text {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func newReadyView(svc *mockSearchService) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 30)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
	assert.NotNil(t, v.Init())
}

func TestView_WithContext(t *testing.T) {
	v := NewView(nil, nil, nil)
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "x")

	assert.Same(t, v, v.WithContext(ctx))
	assert.Equal(t, ctx, v.ctx)
}

func TestView_TypeAndSubmit(t *testing.T) {
	svc := &mockSearchService{results: []domain.SearchResult{agentsResult()}}
	v := newReadyView(svc)

	v = typeText(v, "agents")
	assert.Equal(t, "agents", v.Query())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, v.InputFocused())
	assert.Equal(t, status.StateSearching, v.StatusBar().State())

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	assert.Equal(t, "agents", completed.Query)
	assert.Len(t, completed.Results, 1)
	assert.Empty(t, svc.suggested, "no suggestions when results exist")

	v, _ = v.Update(completed)
	assert.Len(t, v.Results(), 1)
	assert.Equal(t, status.StateResults, v.StatusBar().State())
	assert.Contains(t, v.View(), "Agents")
}

func TestView_SubmitEmptyQuery(t *testing.T) {
	v := newReadyView(&mockSearchService{})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, v.InputFocused())
}

func TestView_NoResultsFetchesSuggestions(t *testing.T) {
	svc := &mockSearchService{suggestions: []string{"xray"}}
	v := newReadyView(svc)
	v = typeText(v, "xrey")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	completed := cmd().(messages.SearchCompleted)
	v, _ = v.Update(completed)

	assert.Equal(t, []string{"xrey"}, svc.suggested)
	assert.Equal(t, []string{"xray"}, v.Suggestions())
	assert.Equal(t, status.StateNoResults, v.StatusBar().State())
	assert.Contains(t, v.StatusBar().Message(), "Did you mean: xray?")
}

func TestView_AcceptSuggestion(t *testing.T) {
	svc := &mockSearchService{}
	v := newReadyView(svc)
	v, _ = v.Update(messages.SearchCompleted{Query: "xrey", Suggestions: []string{"xray"}})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	require.NotNil(t, cmd)
	assert.Equal(t, "xray", v.Query())
	cmd()
	assert.Equal(t, []string{"xray"}, svc.queries)
}

func TestView_SearchError(t *testing.T) {
	svc := &mockSearchService{err: errors.New("corpus unavailable")}
	v := newReadyView(svc)
	v = typeText(v, "agents")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(cmd())

	assert.EqualError(t, v.Err(), "corpus unavailable")
	assert.True(t, v.InputFocused())
	assert.Contains(t, v.View(), "Error: corpus unavailable")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)
	v = typeText(v, "agents")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd()

	errMsg, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoSearchService)

	v, _ = v.Update(errMsg)
	assert.Equal(t, status.StateError, v.StatusBar().State())
}

func TestView_OpenSelectedResult(t *testing.T) {
	v := newReadyView(&mockSearchService{})
	v, _ = v.Update(messages.SearchCompleted{Query: "agents", Results: []domain.SearchResult{agentsResult()}})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	selected, ok := cmd().(messages.DocumentSelected)
	require.True(t, ok)
	assert.Equal(t, "/docs/concepts/agents", selected.Document.Href)
	assert.Equal(t, messages.ViewSearch, selected.From)
}

func TestView_NewSearch(t *testing.T) {
	v := newReadyView(&mockSearchService{})
	v.SetQuery("agents")
	v, _ = v.Update(messages.SearchCompleted{Query: "agents", Results: []domain.SearchResult{agentsResult()}})
	require.False(t, v.InputFocused())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
}

func TestView_NavigateResults(t *testing.T) {
	second := agentsResult()
	second.Document.Href = "/docs/concepts/multi-agent"
	v := newReadyView(&mockSearchService{})
	v, _ = v.Update(messages.SearchCompleted{Query: "agents", Results: []domain.SearchResult{agentsResult(), second}})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := newReadyView(&mockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_RunQuery(t *testing.T) {
	svc := &mockSearchService{results: []domain.SearchResult{agentsResult()}}
	v := newReadyView(svc)

	v, cmd := v.Update(messages.RunQuery{Query: "agents"})

	require.NotNil(t, cmd)
	assert.Equal(t, "agents", v.Query())
	cmd()
	assert.Equal(t, []string{"agents"}, svc.queries)
}

func TestView_Reset(t *testing.T) {
	v := newReadyView(&mockSearchService{})
	v.SetQuery("agents")
	v, _ = v.Update(messages.SearchCompleted{Query: "agents", Results: []domain.SearchResult{agentsResult()}})

	v.Reset()

	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
	assert.Empty(t, v.Results())
	assert.Nil(t, v.Err())
	assert.Equal(t, status.StateReady, v.StatusBar().State())
}
