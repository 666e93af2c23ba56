// Package history provides the recent queries view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Limit is the number of queries shown.
const Limit = 50

// View lists recent queries. Selecting one runs it again.
type View struct {
	styles         *styles.Styles
	historyService driving.HistoryService
	ctx            context.Context
	now            func() time.Time

	records  []domain.QueryRecord
	selected int
	height   int
	err      error
	loading  bool
}

// NewView creates a new history view. A nil service shows the view as disabled.
func NewView(s *styles.Styles, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:         s,
		historyService: historyService,
		ctx:            context.Background(),
		now:            time.Now,
		height:         24,
	}
}

// WithContext sets the context used for history calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads recent queries.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.selected = 0
	ctx := v.ctx
	svc := v.historyService
	return func() tea.Msg {
		if svc == nil {
			return messages.HistoryLoaded{Err: domain.ErrHistoryDisabled}
		}
		records, err := svc.Recent(ctx, Limit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.height = msg.Height
		return v, nil

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		v.records = msg.Records
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.records)-1 {
				v.selected++
			}
		case "enter":
			if v.selected < len(v.records) {
				query := v.records[v.selected].Query
				return v, tea.Sequence(
					func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearch} },
					func() tea.Msg { return messages.RunQuery{Query: query} },
				)
			}
		case "r":
			return v, v.Init()
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Recent searches"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading history..."))
	case errors.Is(v.err, domain.ErrHistoryDisabled):
		b.WriteString(v.styles.Muted.Render("Query history is disabled. Enable it with: docsearch settings set history.enabled true"))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No searches yet."))
	default:
		n := max(v.height-6, 1)
		start := max(v.selected-n+1, 0)
		for i := start; i < len(v.records) && i < start+n; i++ {
			b.WriteString(v.renderRecord(i, &v.records[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] search again  [r] refresh  [esc] back"))
	return b.String()
}

func (v *View) renderRecord(index int, rec *domain.QueryRecord) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}
	line := fmt.Sprintf("%s%-30s %3d results  %s", indicator, rec.Query, rec.ResultCount, Ago(v.now(), rec.CreatedAt))
	if index == v.selected {
		return v.styles.Selected.Render(line)
	}
	out := v.styles.Normal.Render(line)
	if rec.TopHref != "" {
		out += "  " + v.styles.Muted.Render(rec.TopHref)
	}
	return out
}

// Ago formats the time between then and now in a short human form.
func Ago(now, then time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(_, height int) {
	v.height = height
}

// Records returns the loaded records.
func (v *View) Records() []domain.QueryRecord {
	return v.records
}

// SelectedIndex returns the selected record index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
