package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ripple/internal/pipeline"
	"ripple/internal/ui"
)

// runProgressUI renders interactive progress until the event channel
// closes.
func runProgressUI(title string, files []string, events <-chan pipeline.Event) error {
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}
