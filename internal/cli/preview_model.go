package cli

import (
	"github.com/Janjiran/workoutkit/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// previewModel is a scrollable viewer for a rendered plan, standing in
// for the platform's modal preview sheet.
type previewModel struct {
	vp      viewport.Model
	content string
	ready   bool
}

func newPreviewModel(content string) previewModel {
	return previewModel{content: content}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Reserve one line for the footer.
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-1)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if !m.ready {
		return ""
	}
	footer := formatter.StyleDim.Render("↑/↓ scroll · q close")
	return m.vp.View() + "\n" + footer
}

// runPreview opens the interactive preview viewer over the rendered plan.
func runPreview(content string) error {
	_, err := tea.NewProgram(newPreviewModel(content), tea.WithAltScreen()).Run()
	return err
}
