package guess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/kata/internal/ui"
)

type model struct {
	game     *Game
	ti       textinput.Model
	feedback string
	inputErr string
	done     bool
}

// Run plays one game in a Bubble Tea loop and reports the result on exit.
func Run(min, max, maxAttempts int) error {
	g := New(min, max, maxAttempts)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Your guess..."
	ti.CharLimit = 12
	ti.Focus()

	p := tea.NewProgram(model{game: g, ti: ti})
	final, err := p.Run()
	if err != nil {
		return err
	}
	m, okModel := final.(model)
	if !okModel {
		return nil
	}
	switch {
	case m.game.Won():
		ui.OK(fmt.Sprintf("guessed it in %d attempts", m.game.Attempts()))
	case m.game.Lost():
		ui.Fail(fmt.Sprintf("out of attempts, the number was %d", m.game.Secret()))
	default:
		ui.Say(fmt.Sprintf("gave up after %d attempts", m.game.Attempts()))
	}
	return nil
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.KeyMsg:
		switch x.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.done {
				return m, tea.Quit
			}
			raw := strings.TrimSpace(m.ti.Value())
			if raw == "" {
				return m, nil
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				// invalid input never costs an attempt
				m.inputErr = "not a number: " + raw
				m.ti.SetValue("")
				return m, nil
			}
			m.inputErr = ""
			m.ti.SetValue("")
			switch m.game.Guess(n) {
			case Correct:
				m.feedback = "Correct!"
			case TooLow:
				m.feedback = fmt.Sprintf("%d is too low, try higher", n)
			case TooHigh:
				m.feedback = fmt.Sprintf("%d is too high, try lower", n)
			}
			if m.game.Over() {
				m.done = true
				m.ti.Blur()
			}
			return m, nil
		case "q":
			// plain q only quits while the input is empty, otherwise it is
			// part of a (bad) guess
			if m.ti.Value() == "" {
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m model) View() string {
	lo, hi := m.game.Bounds()
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("Guess the number") + "\n")
	b.WriteString(ui.MutedStyle.Render(fmt.Sprintf("I'm thinking of a number between %d and %d.", lo, hi)) + "\n\n")

	if max := m.game.MaxAttempts(); max > 0 {
		b.WriteString(fmt.Sprintf("Attempts %d/%d  %s\n", m.game.Attempts(), max,
			ui.ProgressBar(m.game.Attempts(), max, 20)))
	} else {
		b.WriteString(fmt.Sprintf("Attempts: %d\n", m.game.Attempts()))
	}

	switch {
	case m.game.Won():
		b.WriteString("\n" + ui.SuccessStyle.Render(fmt.Sprintf("Correct! Got it in %d attempts.", m.game.Attempts())) + "\n")
		b.WriteString(ui.HelpStyle.Render("enter/esc to leave"))
	case m.game.Lost():
		b.WriteString("\n" + ui.ErrorStyle.Render(fmt.Sprintf("Out of attempts. The number was %d.", m.game.Secret())) + "\n")
		b.WriteString(ui.HelpStyle.Render("enter/esc to leave"))
	default:
		if m.feedback != "" {
			b.WriteString("\n" + ui.AccentStyle.Render(m.feedback) + "\n")
		}
		if m.inputErr != "" {
			b.WriteString("\n" + ui.ErrorStyle.Render(m.inputErr) + "\n")
		}
		b.WriteString("\n" + m.ti.View() + "\n")
		b.WriteString(ui.HelpStyle.Render("enter to guess • esc to give up"))
	}

	return ui.PanelString(b.String())
}
