package tui

import "github.com/charmbracelet/lipgloss"

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	title := styleTitle.Render("momentclass")
	subtitle := styleLabel.Render("happy-moment classification prompt")

	input := styleInput.Render(a.input.View())

	var preview string
	if a.previewErr != nil {
		preview = styleError.Render("render error: " + a.previewErr.Error())
	} else {
		// Leave room for title, input, labels and the status bar.
		avail := a.height - 10
		preview = stylePreview.Render(clipLines(a.preview, avail))
	}

	statusBar := styleStatusBar.Render("[Enter] Render  [Esc] Cancel")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		styleLabel.Render("Moment:"),
		input,
		"",
		styleLabel.Render("Prompt preview:"),
		preview,
		"",
		statusBar,
	)
}
