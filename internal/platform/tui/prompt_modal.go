package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/riddle-grid/internal/games/riddle"
	sim "github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
)

var (
	modalBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Padding(1, 3)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)

	modalQuestionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))

	modalWrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	modalHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	modalCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("13")).
				Bold(true)
)

// promptModal presents an open riddle prompt: a text input for barrier and
// rule gates, a selectable option list for choice gates.
type promptModal struct {
	game   *riddle.Game
	input  textinput.Model
	cursor int
	wrong  bool
}

func newPromptModal(game *riddle.Game) *promptModal {
	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	return &promptModal{game: game, input: ti}
}

// done reports whether the prompt has been resolved or dismissed.
func (m *promptModal) done() bool {
	return m.game.PendingPrompt() == nil
}

// handleKey routes one key press into the modal.
func (m *promptModal) handleKey(msg tea.KeyMsg) tea.Cmd {
	p := m.game.PendingPrompt()
	if p == nil {
		return nil
	}

	switch msg.String() {
	case "esc":
		m.game.DismissPrompt()
		return nil
	}

	if p.Kind == sim.GateChoice {
		switch msg.String() {
		case "up", "k", "w":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "s":
			if m.cursor < len(p.Choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.game.ChoosePromptOption(m.cursor)
		}
		return nil
	}

	if msg.String() == "enter" {
		if !m.game.AnswerPrompt(m.input.Value()) {
			m.wrong = true
			m.input.SetValue("")
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.wrong = false
	return cmd
}

// View renders the modal centered in the given screen area.
func (m *promptModal) View(width, height int) string {
	p := m.game.PendingPrompt()
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(titleFor(p.Kind)))
	b.WriteString("\n\n")
	b.WriteString(modalQuestionStyle.Render(p.Question))
	b.WriteString("\n\n")

	if p.Kind == sim.GateChoice {
		for i, choice := range p.Choices {
			if i == m.cursor {
				b.WriteString(modalCursorStyle.Render("> " + choice))
			} else {
				b.WriteString("  " + choice)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(modalHintStyle.Render("↑/↓ choose · Enter confirm · Esc walk away"))
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.wrong {
			b.WriteString(modalWrongStyle.Render(fmt.Sprintf("Wrong. Attempts: %d", p.Attempts)))
			b.WriteString("\n")
		}
		b.WriteString(modalHintStyle.Render("Enter answer · Esc walk away"))
	}

	box := modalBorderStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func titleFor(kind sim.GateKind) string {
	switch kind {
	case sim.GateRule:
		return "A rule gate bars the way"
	case sim.GateChoice:
		return "The gate offers a choice"
	default:
		return "The gate asks a riddle"
	}
}
