package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/kwsearch/internal/linescan"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minListHeight = 3
)

// Browser is a read-only bubbletea model over a completed search: a
// scrolling list of matches and a panel showing the selected match with
// its context lines.
type Browser struct {
	summary  string
	keyword  string
	matches  []kwsearch.MatchRecord
	cursor   int
	offset   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewBrowser creates a browser positioned on the first match.
func NewBrowser(outcome *kwsearch.SearchOutcome) Browser {
	h := help.New()
	h.Width = defaultWidth
	return Browser{
		summary: linescan.Summary(outcome.Result, outcome.Request.Keyword, outcome.File.DisplayPath, outcome.Request.CaseSensitive),
		keyword: outcome.Request.Keyword,
		matches: outcome.Result.Matches,
		width:   defaultWidth,
		height:  defaultHeight,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.help.Width = msg.Width
		b.scrollToCursor()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			b.quitting = true
			return b, tea.Quit
		case key.Matches(msg, b.keys.Up):
			b.move(-1)
		case key.Matches(msg, b.keys.Down):
			b.move(1)
		case key.Matches(msg, b.keys.PageUp):
			b.move(-b.listHeight())
		case key.Matches(msg, b.keys.PageDown):
			b.move(b.listHeight())
		case key.Matches(msg, b.keys.Top):
			b.move(-len(b.matches))
		case key.Matches(msg, b.keys.Bottom):
			b.move(len(b.matches))
		case key.Matches(msg, b.keys.Help):
			b.help.ShowAll = !b.help.ShowAll
		}
	}
	return b, nil
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render(b.summary))
	s.WriteString("\n\n")

	if len(b.matches) == 0 {
		s.WriteString(SubtitleStyle.Render("Nothing to browse."))
		s.WriteString("\n")
		s.WriteString(HelpStyle.Render(b.help.View(b.keys)))
		return s.String()
	}

	end := b.offset + b.listHeight()
	if end > len(b.matches) {
		end = len(b.matches)
	}
	for i := b.offset; i < end; i++ {
		s.WriteString(b.row(i))
		s.WriteString("\n")
	}
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d/%d", b.cursor+1, len(b.matches))))
	s.WriteString("\n")

	s.WriteString(BoxStyle.Width(b.panelWidth()).Render(b.detail()))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(b.help.View(b.keys)))
	return s.String()
}

// Cursor returns the index of the selected match.
func (b Browser) Cursor() int {
	return b.cursor
}

// Selected returns the selected match; ok is false when there are none.
func (b Browser) Selected() (kwsearch.MatchRecord, bool) {
	if len(b.matches) == 0 {
		return kwsearch.MatchRecord{}, false
	}
	return b.matches[b.cursor], true
}

// Quitting reports whether the user asked to leave.
func (b Browser) Quitting() bool {
	return b.quitting
}

func (b *Browser) move(delta int) {
	if len(b.matches) == 0 {
		return
	}
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor >= len(b.matches) {
		b.cursor = len(b.matches) - 1
	}
	b.scrollToCursor()
}

func (b *Browser) scrollToCursor() {
	h := b.listHeight()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+h {
		b.offset = b.cursor - h + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// listHeight is the number of match rows shown above the detail panel.
func (b Browser) listHeight() int {
	h := b.height/2 - 3
	if h < minListHeight {
		return minListHeight
	}
	return h
}

func (b Browser) panelWidth() int {
	if b.width < 20 {
		return 16
	}
	return b.width - 4
}

func (b Browser) row(i int) string {
	m := b.matches[i]
	loc := fmt.Sprintf("%d:%d", m.LineNumber, m.Column)
	text := truncate(strings.TrimSpace(m.Line), b.width-len(loc)-4)
	if i == b.cursor {
		return SelectedStyle.Render(SymbolSelected+" "+loc) + " " + text
	}
	return "  " + UnselectedStyle.Render(loc) + " " + text
}

func (b Browser) detail() string {
	m := b.matches[b.cursor]
	width := len(fmt.Sprint(m.LineNumber + len(m.ContextAfter)))

	var lines []string
	first := m.LineNumber - len(m.ContextBefore)
	for i, text := range m.ContextBefore {
		lines = append(lines, ContextStyle.Render(fmt.Sprintf("%*d  %s", width, first+i, text)))
	}
	lines = append(lines, fmt.Sprintf("%*d  %s", width, m.LineNumber, RenderMatchLine(m, b.keyword)))
	for i, text := range m.ContextAfter {
		lines = append(lines, ContextStyle.Render(fmt.Sprintf("%*d  %s", width, m.LineNumber+1+i, text)))
	}
	return strings.Join(lines, "\n")
}

// RenderMatchLine returns the match line with its occurrence styled.
func RenderMatchLine(m kwsearch.MatchRecord, keyword string) string {
	before, occurrence, after, ok := linescan.Split(m, keyword)
	if !ok {
		return m.Line
	}
	return before + MatchStyle.Render(occurrence) + after
}

func truncate(s string, limit int) string {
	if limit < 1 {
		limit = 1
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// RunBrowser shows outcome in a full-screen browser until the user quits.
func RunBrowser(outcome *kwsearch.SearchOutcome, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewBrowser(outcome), opts...).Run(); err != nil {
		return fmt.Errorf("results browser: %w", err)
	}
	return nil
}
