// Package documents provides the corpus browser view for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// allSections is the filter label that shows every page.
const allSections = "All"

// View lists the pages of the corpus, optionally filtered by section.
type View struct {
	styles        *styles.Styles
	corpusService driving.CorpusService
	ctx           context.Context

	documents    []domain.Document
	sections     []string
	section      int // index into filters(); 0 is allSections
	selected     int
	scrollOffset int
	width        int
	height       int
	err          error
	loading      bool
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, corpusService driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		corpusService: corpusService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context used for corpus calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the corpus.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load(false)
}

// load returns a command that lists the documents, reloading sources first when reload is set.
func (v *View) load(reload bool) tea.Cmd {
	ctx := v.ctx
	svc := v.corpusService
	return func() tea.Msg {
		if svc == nil {
			return messages.DocumentsLoaded{Err: fmt.Errorf("corpus service not available")}
		}

		var (
			docs []domain.Document
			err  error
		)
		if reload {
			docs, err = svc.Reload(ctx)
		} else {
			docs, err = svc.Documents(ctx)
		}
		if err != nil {
			return messages.DocumentsLoaded{Err: err}
		}

		sections, err := svc.Sections(ctx)
		return messages.DocumentsLoaded{Documents: docs, Sections: sections, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.documents = msg.Documents
			v.sections = msg.Sections
			if v.section > len(v.sections) {
				v.section = 0
			}
			v.selected = 0
			v.scrollOffset = 0
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	visible := v.Visible()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(visible)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "tab":
		v.section = (v.section + 1) % (len(v.sections) + 1)
		v.selected = 0
		v.scrollOffset = 0
	case "shift+tab":
		n := len(v.sections) + 1
		v.section = (v.section + n - 1) % n
		v.selected = 0
		v.scrollOffset = 0
	case "enter":
		if v.selected < len(visible) {
			doc := visible[v.selected]
			return v, func() tea.Msg {
				return messages.DocumentSelected{Document: doc, From: messages.ViewDocuments}
			}
		}
	case "r":
		v.loading = true
		return v, v.load(true)
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// Section returns the active section filter, empty for all sections.
func (v *View) Section() string {
	if v.section == 0 || v.section > len(v.sections) {
		return ""
	}
	return v.sections[v.section-1]
}

// Visible returns the documents that pass the section filter.
func (v *View) Visible() []domain.Document {
	section := v.Section()
	if section == "" {
		return v.documents
	}
	out := make([]domain.Document, 0, len(v.documents))
	for _, d := range v.documents {
		if d.InSection([]string{section}) {
			out = append(out, d)
		}
	}
	return out
}

func (v *View) adjustScroll() {
	n := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+n {
		v.scrollOffset = v.selected - n + 1
	}
}

func (v *View) visibleItemCount() int {
	return max(v.height-8, 1)
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	visible := v.Visible()
	label := v.Section()
	if label == "" {
		label = allSections
	}
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Documents - %s (%d)", label, len(visible))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(visible) == 0:
		b.WriteString(v.styles.Muted.Render("No documents."))
	default:
		n := v.visibleItemCount()
		for i := v.scrollOffset; i < len(visible) && i < v.scrollOffset+n; i++ {
			b.WriteString(v.renderDocument(i, &visible[i]))
			b.WriteString("\n")
		}
		if len(visible) > n {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1, min(v.scrollOffset+n, len(visible)), len(visible))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] read  [tab] section  [r] reload  [esc] back"))
	return b.String()
}

func (v *View) renderDocument(index int, doc *domain.Document) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	titleWidth := max(v.width/2-4, 10)
	title := doc.Title
	if r := []rune(title); len(r) > titleWidth {
		title = string(r[:titleWidth-3]) + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, titleWidth, title, doc.Href))
	}
	return v.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, titleWidth, title)) +
		v.styles.Muted.Render(doc.Href)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Documents returns every loaded document.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// SelectedIndex returns the selected index within Visible.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
