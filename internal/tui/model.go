// Package tui provides the Bubble Tea live counting editor.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuicount/internal/report"
	"github.com/verte-zerg/tuicount/internal/textstats"
)

const (
	placeholder   = "Start writing your text here..."
	readOnlyHint  = "read-only: display differs from input, ctrl+l to clear"
	cardWidth     = 18
	sidebarWidth  = 2*cardWidth + 4
	stackBelow    = 80
	minEditorRows = 3
)

// Options configures a new editor model.
type Options struct {
	Theme string
	// Limit is a display-only character hint; 0 hides it.
	Limit int
	Text  string
}

// Model implements the Bubble Tea counting editor.
type Model struct {
	editor textarea.Model
	memo   textstats.Memo
	stats  textstats.Stats

	theme  string
	styles styles
	limit  int

	width  int
	height int

	// text is what gets counted. It only follows the editor while the
	// editor holds the input unchanged; see readOnly.
	text     string
	readOnly bool

	focusCmd tea.Cmd
	reported bool
}

// NewModel constructs an editor model.
func NewModel(opts Options) *Model {
	theme := opts.Theme
	if !ValidTheme(theme) {
		theme = ThemeDark
	}
	ed := textarea.New()
	ed.Placeholder = placeholder
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.Prompt = ""
	ed.SetValue(opts.Text)

	m := &Model{
		editor: ed,
		theme:  theme,
		styles: newStyles(theme),
		limit:  opts.Limit,
		text:   opts.Text,
	}
	// The textarea drops lines past its cap and rewrites tabs and control
	// characters. Input it cannot hold verbatim is shown read-only and the
	// original text is counted.
	m.readOnly = m.editor.Value() != opts.Text
	if !m.readOnly {
		m.focusCmd = m.editor.Focus()
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.focusCmd)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.reported = true
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.theme = nextTheme(m.theme)
			m.styles = newStyles(m.theme)
			return m, nil
		case tea.KeyCtrlL:
			m.editor.Reset()
			m.text = ""
			var cmd tea.Cmd
			if m.readOnly {
				m.readOnly = false
				cmd = m.editor.Focus()
			}
			m.recompute()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.recompute()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.title.Render("Word Counter"), "  ", m.styles.badge.Render("Detailed Text Analysis"))

	left := m.styles.editor.Render(m.editor.View())
	if hint := m.renderHint(); hint != "" {
		left = lipgloss.JoinVertical(lipgloss.Right, left, hint)
	}
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderCards(), m.renderInsights())

	var body string
	if m.stacked() {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

// Stats returns the stats of the counted text.
func (m *Model) Stats() textstats.Stats {
	return m.stats
}

// Reported reports whether the user quit asking for the final stats.
func (m *Model) Reported() bool {
	return m.reported
}

func (m *Model) recompute() {
	if !m.readOnly {
		m.text = m.editor.Value()
	}
	m.stats = m.memo.Compute(m.text)
}

func (m *Model) stacked() bool {
	return m.width > 0 && m.width < stackBelow
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	// Borders take two columns and two rows; header, hint and footer take the rest.
	editorWidth := m.width - 2
	if !m.stacked() {
		editorWidth = m.width - sidebarWidth - 4
	}
	if editorWidth < 1 {
		editorWidth = 1
	}
	editorHeight := m.height - 8
	if m.stacked() {
		editorHeight -= 14
	}
	if editorHeight < minEditorRows {
		editorHeight = minEditorRows
	}
	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(editorHeight)
}

func (m *Model) renderHint() string {
	var parts []string
	if m.readOnly {
		parts = append(parts, m.styles.hintOver.Render(readOnlyHint))
	}
	if m.limit > 0 {
		hint := fmt.Sprintf("%d / %d", m.stats.CharacterCount, m.limit)
		if m.stats.CharacterCount > m.limit {
			parts = append(parts, m.styles.hintOver.Render(hint))
		} else {
			parts = append(parts, m.styles.hint.Render(hint))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderCards() string {
	metrics := report.Summary(m.stats)
	cards := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		content := m.styles.cardTitle.Render(metric.Label) + "\n" + m.styles.cardValue.Render(metric.Value)
		cards = append(cards, m.styles.card.Width(cardWidth).Render(content))
	}
	rows := make([]string, 0, (len(cards)+1)/2)
	for i := 0; i < len(cards); i += 2 {
		end := i + 2
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderInsights() string {
	inner := sidebarWidth - 4
	lines := []string{m.styles.cardValue.Render("Advanced Insights")}
	for _, metric := range report.Insights(m.stats) {
		gap := inner - runewidth.StringWidth(metric.Label) - runewidth.StringWidth(metric.Value)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, m.styles.cardTitle.Render(metric.Label)+strings.Repeat(" ", gap)+m.styles.cardValue.Render(metric.Value))
	}
	return m.styles.card.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	keys := []string{"ctrl+s done", "ctrl+t theme", "ctrl+l clear", "esc quit"}
	return m.styles.footer.Render(strings.Join(keys, "  ·  "))
}
