package game

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// scriptUI is a scripted implementation of the UI capabilities. Choice
// prompts consume the choices queue in order and fall back to "s" once it
// runs dry; line prompts consume the lines queue and fall back to "n".
// The defaults keep session tests terminating even when a seeded shuffle
// deals an opening blackjack and skips a prompt. Everything displayed is
// captured for assertions.
type scriptUI struct {
	choices []string
	lines   []string
	shown   []string
	prompts []string
	clears  int
}

func newScriptUI(choices ...string) *scriptUI {
	return &scriptUI{choices: choices}
}

func (u *scriptUI) withLines(lines ...string) *scriptUI {
	u.lines = lines
	return u
}

func (u *scriptUI) PromptChoice(prompt string, valid []string) (string, error) {
	u.prompts = append(u.prompts, prompt)
	if len(u.choices) == 0 {
		return "s", nil
	}
	answer := u.choices[0]
	u.choices = u.choices[1:]
	return strings.ToLower(answer), nil
}

func (u *scriptUI) PromptLine(prompt string) (string, error) {
	u.prompts = append(u.prompts, prompt)
	if len(u.lines) == 0 {
		return "n", nil
	}
	answer := u.lines[0]
	u.lines = u.lines[1:]
	return answer, nil
}

func (u *scriptUI) Show(text string) {
	u.shown = append(u.shown, text)
}

func (u *scriptUI) Clear() {
	u.clears++
}

func (u *scriptUI) shownContaining(substr string) bool {
	for _, s := range u.shown {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}
