package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Interface adapts the Bubble Tea model to the game's UI capabilities. The
// game loop calls it from its own goroutine while the program renders.
type Interface struct {
	model   *Model
	program *tea.Program
	term    *termenv.Output
	logger  *log.Logger
}

// NewInterface creates a TUI-backed game UI
func NewInterface(logger *log.Logger) *Interface {
	model := NewModel(logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	return &Interface{
		model:   model,
		program: program,
		term:    termenv.NewOutput(os.Stdout),
		logger:  logger,
	}
}

// Run runs the Bubble Tea program until it quits. Call from its own
// goroutine alongside the game loop.
func (i *Interface) Run() error {
	if _, err := i.program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// Close shuts the program down and restores the terminal
func (i *Interface) Close() error {
	i.model.SendQuitSignal()
	if i.program != nil {
		i.program.Quit()
		i.program.Wait()
	}
	i.term.ShowCursor()
	return nil
}

// Show appends game output to the log pane
func (i *Interface) Show(text string) {
	i.model.AddLogEntry(text)
}

// Clear clears the log pane
func (i *Interface) Clear() {
	i.model.ClearLog()
}

// PromptChoice shows the question in the action pane and waits until the
// answer matches one of valid, case-insensitively.
func (i *Interface) PromptChoice(prompt string, valid []string) (string, error) {
	i.model.SetPrompt(prompt, valid)
	defer i.model.ClearPrompt()

	for {
		answer, err := i.model.WaitForInput()
		if err != nil {
			return "", err
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		for _, v := range valid {
			if answer == strings.ToLower(v) {
				return answer, nil
			}
		}

		i.logger.Debug("invalid prompt answer", "answer", answer)
		i.model.AddLogEntry(ErrorStyle.Render(
			fmt.Sprintf("Invalid choice %q, expected one of: %s", answer, strings.Join(valid, ", "))))
	}
}

// PromptLine shows the question and returns the next submitted line
func (i *Interface) PromptLine(prompt string) (string, error) {
	i.model.SetPrompt(prompt, nil)
	defer i.model.ClearPrompt()
	return i.model.WaitForInput()
}

// SetTally updates the sidebar win counts
func (i *Interface) SetTally(playerWins, dealerWins int) {
	i.model.SetTally(playerWins, dealerWins)
}
