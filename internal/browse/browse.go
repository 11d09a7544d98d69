// Package browse implements the interactive theme browser: a list of
// discovered themes on the left and a live preview of the selection on
// the right, rendered by running a fixed sample corpus through the
// selected theme.
package browse

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/hue/pkg/autodetect"
	"github.com/dkoosis/hue/pkg/highlight"
	"github.com/dkoosis/hue/pkg/pipeline"
	"github.com/dkoosis/hue/pkg/render"
	"github.com/dkoosis/hue/pkg/theme"
)

// Run launches the browser over the discovered themes and blocks until
// the user quits. Unicode controls whether preview icons use emoji.
func Run(ctx context.Context, unicode bool) error {
	entries, err := theme.List()
	if err != nil {
		return fmt.Errorf("listing themes: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no themes found in %s or ./themes", theme.Dir())
	}
	program := tea.NewProgram(newModel(entries, unicode), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

type model struct {
	entries  []theme.Entry
	unicode  bool
	selected int
	viewport viewport.Model
	previews map[int]string
	ready    bool
	width    int
	height   int

	listWidth   int
	detailWidth int

	ui          render.UI
	listStyle   lipgloss.Style
	detailStyle lipgloss.Style
	selectedRow lipgloss.Style
	statusBar   lipgloss.Style
}

func newModel(entries []theme.Entry, unicode bool) model {
	vp := viewport.New(0, 0)
	border := lipgloss.RoundedBorder()
	return model{
		entries:     entries,
		unicode:     unicode,
		viewport:    vp,
		previews:    make(map[int]string),
		ui:          render.DefaultUI(),
		listStyle:   lipgloss.NewStyle().Border(border).Padding(0, 1),
		detailStyle: lipgloss.NewStyle().Border(border).Padding(0, 1),
		selectedRow: lipgloss.NewStyle().Reverse(true),
		statusBar:   lipgloss.NewStyle().Faint(true),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.refreshViewport()
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 5
		if m.detailWidth < 20 {
			m.detailWidth = 20
		}
		m.viewport.Width = m.detailWidth
		m.viewport.Height = m.height - 6
		if m.viewport.Height < 3 {
			m.viewport.Height = 3
		}
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

func (m *model) calculateListWidth() int {
	maxWidth := 0
	for _, e := range m.entries {
		// Row shape: "> name  source"
		w := runewidth.StringWidth(e.Name) + len(e.Source) + 4
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth < 18 {
		maxWidth = 18
	}
	return maxWidth + 4
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return
	}
	if cached, ok := m.previews[m.selected]; ok {
		m.viewport.SetContent(cached)
		return
	}
	preview := m.buildPreview(m.entries[m.selected])
	m.previews[m.selected] = preview
	m.viewport.SetContent(preview)
}

// buildPreview runs the sample corpus through the entry's theme. Each
// filter the theme defines gets its own section so the whole theme is
// visible at once.
func (m *model) buildPreview(entry theme.Entry) string {
	th, err := theme.LoadFile(entry.Path)
	if err != nil {
		return m.ui.Muted.Render("cannot load theme: " + err.Error())
	}

	det, err := autodetect.New(m.unicode)
	if err != nil {
		return m.ui.Muted.Render("detector init failed: " + err.Error())
	}

	var sb strings.Builder
	sb.WriteString(m.ui.ThemeInfo(th))
	sb.WriteString("\n")

	filters := make([]string, 0, len(th.Filters))
	for name := range th.Filters {
		filters = append(filters, name)
	}
	sort.Strings(filters)
	if len(filters) == 0 {
		filters = []string{""}
	}

	for _, filter := range filters {
		if filter != "" {
			sb.WriteString(m.ui.Heading(filter) + "\n")
		}
		p := pipeline.New(highlight.New(th, filter, det), pipeline.Options{})
		for _, line := range render.SampleLines() {
			sb.WriteString("  " + p.ProcessLine(line) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) View() string {
	if !m.ready {
		return "Loading themes..."
	}

	title := m.ui.Heading("theme browser")

	contentHeight := m.height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}

	listPanel := m.listStyle.
		Width(m.listWidth).
		Height(contentHeight).
		Render(m.renderList(contentHeight))

	detailPanel := m.detailStyle.
		Width(m.detailWidth).
		Height(contentHeight).
		Render(m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.statusBar.Render("↑/↓ navigate • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

func (m *model) renderList(height int) string {
	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		row := fmt.Sprintf("%s  %s", e.Name, e.Source)
		if i == m.selected {
			lines = append(lines, m.selectedRow.Render("> "+row))
		} else {
			lines = append(lines, "  "+m.ui.Name.Render(e.Name)+"  "+m.ui.Source.Render(e.Source))
		}
	}
	if len(lines) > height {
		// Keep the selection visible when the list overflows.
		start := m.selected - height/2
		if start < 0 {
			start = 0
		}
		if start+height > len(lines) {
			start = len(lines) - height
		}
		lines = lines[start : start+height]
	}
	return strings.Join(lines, "\n")
}
