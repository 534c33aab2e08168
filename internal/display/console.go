// Package display provides the plain-console implementation of the game's
// UI capabilities: prompts read line by line from stdin, output written with
// lipgloss styling, screen control through termenv.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// Console implements game.UI over an input reader and output writer,
// normally stdin and stdout.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	term    *termenv.Output
	logger  *log.Logger
}

// NewConsole creates a console UI
func NewConsole(in io.Reader, out io.Writer, logger *log.Logger) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		term:    termenv.NewOutput(out),
		logger:  logger,
	}
}

// Show writes one line of game output. A broken output stream is fatal;
// there is no recovery for a dead terminal.
func (c *Console) Show(text string) {
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		c.logger.Fatal("output stream broken", "error", err)
	}
}

// Clear clears the screen and homes the cursor
func (c *Console) Clear() {
	c.term.ClearScreen()
}

// PromptChoice asks until the answer matches one of valid,
// case-insensitively, and returns the match in lower case.
func (c *Console) PromptChoice(prompt string, valid []string) (string, error) {
	for {
		c.Show(promptStyle.Render(prompt))
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		for _, v := range valid {
			if answer == strings.ToLower(v) {
				return answer, nil
			}
		}

		c.Show(errorStyle.Render(fmt.Sprintf("Invalid choice %q, expected one of: %s", answer, strings.Join(valid, ", "))))
	}
}

// PromptLine asks for one free-form line
func (c *Console) PromptLine(prompt string) (string, error) {
	c.Show(promptStyle.Render(prompt))
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}
