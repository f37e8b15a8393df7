package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// previewModel pages through an expanded document
type previewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPreviewModel(title, content string) previewModel {
	return previewModel{title: title, content: content}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.viewport.SetContent(m.content)
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

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m previewModel) headerView() string {
	title := styles.Title.Render(m.title)
	rule := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(title)-1))
	return title + " " + styles.Divider.Render(rule)
}

func (m previewModel) footerView() string {
	info := fmt.Sprintf("%3.f%%  q to quit", m.viewport.ScrollPercent()*100)
	return styles.Dim.Render(info)
}

// RunPreview shows content in a full-screen pager until the user quits
func RunPreview(title, content string) error {
	RefreshStyles()
	p := tea.NewProgram(
		newPreviewModel(title, content),
		tea.WithAltScreen(),
		tea.WithInput(os.Stdin),
		tea.WithOutput(os.Stdout),
	)
	_, err := p.Run()
	return err
}
