package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	maxLogLines    = 100
	shownLogLines  = 5
	digestShortLen = 16
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TeaModel is the [tea.Model] of the tree browser.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	snapshot Snapshot

	fullWidthWithBorders int

	treeViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns a new [TeaModel] showing the given [Snapshot].
//
//nolint:mnd
func NewTeaModel(snapshot Snapshot, cancel context.CancelFunc) TeaModel {
	treeViewport := viewport.New(80, 20)
	treeViewport.SetContent(snapshot.Listing)

	return TeaModel{
		snapshot:     snapshot,
		treeViewport: treeViewport,
		logs:         make([]string, 0, maxLogLines),
		cancel:       cancel,
	}
}

func (m TeaModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2

		// Title, borders, stats, logs and help take the remaining lines.
		m.treeViewport.Width = m.fullWidthWithBorders
		m.treeViewport.Height = max(m.height-shownLogLines-8, 1) //nolint:mnd

		m.ready = true

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, strings.TrimRight(string(msg), "\n"))
	}

	m.treeViewport, cmd = m.treeViewport.Update(msg)

	return m, cmd
}

func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	treeSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Tree"),
				m.treeViewport.View(),
			),
		)

	statsSection := infoStyle.
		Width(m.fullWidthWithBorders).
		Render(m.statsLine())

	logsSection := infoStyle.
		Width(m.fullWidthWithBorders).
		Render(strings.Join(m.lastLogs(), "\n"))

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("↑/↓: scroll • q: quit gui • ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		treeSection,
		statsSection,
		logsSection,
		helpSection,
	)
}

func (m TeaModel) statsLine() string {
	digest := m.snapshot.Digest
	if len(digest) > digestShortLen {
		digest = digest[:digestShortLen]
	}

	return fmt.Sprintf("Directories: %s • Files: %s • Digest: %s",
		humanize.Comma(int64(m.snapshot.Stats.Directories)),
		humanize.Comma(int64(m.snapshot.Stats.Files)),
		digest,
	)
}

func (m TeaModel) lastLogs() []string {
	if len(m.logs) <= shownLogLines {
		return m.logs
	}

	return m.logs[len(m.logs)-shownLogLines:]
}
