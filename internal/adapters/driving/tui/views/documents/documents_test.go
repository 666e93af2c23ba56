package documents

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

type mockCorpus struct {
	docs    []domain.Document
	err     error
	reloads int
}

func (m *mockCorpus) Documents(context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockCorpus) Get(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockCorpus) Sections(context.Context) ([]string, error) {
	return []string{"Guides", "Concepts"}, nil
}

func (m *mockCorpus) Reload(ctx context.Context) ([]domain.Document, error) {
	m.reloads++
	return m.Documents(ctx)
}

func corpusDocs() []domain.Document {
	return []domain.Document{
		{Title: "Quickstart", Href: "/docs/quickstart", Section: "Guides"},
		{Title: "Agents", Href: "/docs/concepts/agents", Section: "Concepts"},
		{Title: "Tools", Href: "/docs/concepts/tools", Section: "Concepts"},
	}
}

func loadedView(t *testing.T, svc *mockCorpus) *View {
	t.Helper()
	v := NewView(nil, svc)
	cmd := v.Init()
	require.NotNil(t, cmd)
	assert.True(t, v.Loading())
	v, _ = v.Update(cmd())
	return v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestView_Load(t *testing.T) {
	v := loadedView(t, &mockCorpus{docs: corpusDocs()})

	assert.False(t, v.Loading())
	assert.Len(t, v.Documents(), 3)
	assert.Equal(t, "", v.Section())
	assert.Contains(t, v.View(), "Documents - All (3)")
	assert.Contains(t, v.View(), "/docs/concepts/agents")
}

func TestView_LoadError(t *testing.T) {
	v := loadedView(t, &mockCorpus{err: errors.New("no sources")})

	assert.EqualError(t, v.Err(), "no sources")
	assert.Contains(t, v.View(), "Error: no sources")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil)

	msg := v.Init()()

	loaded, ok := msg.(messages.DocumentsLoaded)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
}

func TestView_SectionFilterCycles(t *testing.T) {
	v := loadedView(t, &mockCorpus{docs: corpusDocs()})

	v, _ = v.Update(key("tab"))
	assert.Equal(t, "Guides", v.Section())
	assert.Len(t, v.Visible(), 1)

	v, _ = v.Update(key("tab"))
	assert.Equal(t, "Concepts", v.Section())
	assert.Len(t, v.Visible(), 2)
	assert.Contains(t, v.View(), "Documents - Concepts (2)")

	v, _ = v.Update(key("tab"))
	assert.Equal(t, "", v.Section())

	v, _ = v.Update(key("shift+tab"))
	assert.Equal(t, "Concepts", v.Section())
}

func TestView_NavigateAndOpen(t *testing.T) {
	v := loadedView(t, &mockCorpus{docs: corpusDocs()})

	v, _ = v.Update(key("j"))
	v, _ = v.Update(key("j"))
	v, _ = v.Update(key("j"))
	assert.Equal(t, 2, v.SelectedIndex())

	v, _ = v.Update(key("k"))
	_, cmd := v.Update(key("enter"))
	require.NotNil(t, cmd)

	selected, ok := cmd().(messages.DocumentSelected)
	require.True(t, ok)
	assert.Equal(t, "/docs/concepts/agents", selected.Document.Href)
	assert.Equal(t, messages.ViewDocuments, selected.From)
}

func TestView_OpenWithinFilter(t *testing.T) {
	v := loadedView(t, &mockCorpus{docs: corpusDocs()})
	v, _ = v.Update(key("tab"))

	_, cmd := v.Update(key("enter"))

	selected := cmd().(messages.DocumentSelected)
	assert.Equal(t, "/docs/quickstart", selected.Document.Href)
}

func TestView_Reload(t *testing.T) {
	svc := &mockCorpus{docs: corpusDocs()}
	v := loadedView(t, svc)

	v, cmd := v.Update(key("r"))
	require.NotNil(t, cmd)
	assert.True(t, v.Loading())

	v, _ = v.Update(cmd())
	assert.Equal(t, 1, svc.reloads)
	assert.False(t, v.Loading())
}

func TestView_Esc(t *testing.T) {
	v := loadedView(t, &mockCorpus{})

	_, cmd := v.Update(key("esc"))

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_EmptyCorpus(t *testing.T) {
	v := loadedView(t, &mockCorpus{docs: []domain.Document{}})

	_, cmd := v.Update(key("enter"))

	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "No documents.")
}
