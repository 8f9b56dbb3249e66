package ui

import (
	"fmt"
	"os"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// MFACodeLength is the number of digits in a TOTP code.
const MFACodeLength = 6

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// ReadMFACode asks for the current code of device on stderr. Only digits
// are accepted and the prompt does not return until the code is complete.
func ReadMFACode(device string) (string, error) {
	p := tea.NewProgram(newMFAInput(device), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	if m, ok := finalModel.(mfaInputModel); ok && m.complete {
		return m.textInput.Value(), nil
	}
	return "", ErrCancelled
}

type mfaInputModel struct {
	textInput textinput.Model
	device    string
	warning   string
	complete  bool
	quitting  bool
}

func newMFAInput(device string) mfaInputModel {
	ti := textinput.New()
	ti.Placeholder = "123456"
	ti.CharLimit = MFACodeLength
	ti.Width = MFACodeLength + 2
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()

	return mfaInputModel{textInput: ti, device: device}
}

func (m mfaInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m mfaInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.textInput.Value()) != MFACodeLength {
				m.warning = fmt.Sprintf("The code has %d digits", MFACodeLength)
				return m, nil
			}
			m.complete = true
			return m, tea.Quit
		case tea.KeyRunes:
			key.Runes = digitsOnly(key.Runes)
			if len(key.Runes) == 0 {
				return m, nil
			}
			msg = key
		}
		m.warning = ""
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m mfaInputModel) View() string {
	if m.complete {
		return ""
	}
	if m.quitting {
		return quitTextStyle.Render("Cancelled.")
	}
	return fmt.Sprintf(
		"\n%s\n%s\n\n%s\n%s\n",
		titleStyle.Render("Enter MFA code"),
		hintStyle.Render(m.device),
		m.textInput.View(),
		hintStyle.Render(m.warning),
	)
}

func digitsOnly(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}
