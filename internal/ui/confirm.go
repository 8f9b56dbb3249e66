package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Confirm asks a yes/no question on stderr. Anything but y/yes is a no.
func Confirm(question string) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question}, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(confirmModel)
	return ok && m.answer, nil
}

type confirmModel struct {
	question string
	answer   bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = true
	case "ctrl+c", "esc", "n", "N", "enter":
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("\n%s %s\n", titleStyle.Render(m.question), hintStyle.Render("(y/N)"))
}
