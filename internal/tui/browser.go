package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Browse opens a full-screen scrollable view of body with the given
// title. It blocks until the user quits with q, esc or ctrl+c.
func Browse(title, body string) error {
	m := browserModel{title: title, body: body}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type browserModel struct {
	title    string
	body     string
	viewport viewport.Model
	ready    bool
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.body)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return strings.Join([]string{m.headerView(), m.viewport.View(), m.footerView()}, "\n")
}

func (m browserModel) headerView() string {
	return TitleStyle.Render(m.title)
}

func (m browserModel) footerView() string {
	return HelpStyle.Render("up/down: scroll - q: quit")
}
