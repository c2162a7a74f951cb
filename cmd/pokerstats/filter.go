package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// filterModel is a one-line inline prompt for player numbers.
type filterModel struct {
	input textinput.Model
	done  bool
}

func newFilterModel() filterModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 1,3,5"
	ti.Prompt = ">> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	ti.CharLimit = 64
	ti.Focus()
	return filterModel{input: ti}
}

func (m filterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m filterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m filterModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render("Enter player numbers to filter the chart (empty to skip):") +
		"\n" + m.input.View() + "\n"
}

// promptForFilter asks interactively for player numbers. It reports an error
// when no interactive terminal is available; callers treat that as "skip".
func promptForFilter() ([]string, error) {
	final, err := tea.NewProgram(newFilterModel()).Run()
	if err != nil {
		return nil, err
	}
	return splitSelection(final.(filterModel).input.Value()), nil
}
