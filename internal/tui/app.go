package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"momentclass/internal/prompt"
)

// App is the interactive editor: a single input line for the moment
// text with a live preview of the prompt it renders to.
type App struct {
	width  int
	height int

	input      textinput.Model
	preview    string
	previewErr error

	accepted bool
	quitting bool
}

// NewApp creates the editor pre-filled with the given moment text.
func NewApp(text string) *App {
	input := textinput.New()
	input.Placeholder = "Describe a happy moment..."
	input.CharLimit = 500
	input.Width = 60
	input.SetValue(text)
	input.Focus()

	a := &App{input: input}
	a.refresh()
	return a
}

// Text returns the accepted moment text, or "" if the user cancelled.
func (a *App) Text() string {
	if !a.accepted {
		return ""
	}
	return strings.TrimSpace(a.input.Value())
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, keys.Accept):
			if strings.TrimSpace(a.input.Value()) == "" {
				return a, nil
			}
			a.accepted = true
			a.quitting = true
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if w := msg.Width - 6; w > 0 && w < 80 {
			a.input.Width = w
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.refresh()
	return a, cmd
}

// refresh re-renders the preview from the current input text.
func (a *App) refresh() {
	out, err := prompt.Render(strings.TrimSpace(a.input.Value()))
	a.preview = out
	a.previewErr = err
}
