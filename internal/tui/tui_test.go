package tui

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestModelLogCapture(t *testing.T) {
	t.Run("test mode captures log entries", func(t *testing.T) {
		m := NewModelWithOptions(testLogger(), true)
		m.AddLogEntry("Alice dealt: The Ace of Spades")
		m.AddLogEntry("Dealer dealt: The King of Hearts")

		captured := m.GetCapturedLog()
		require.Len(t, captured, 2)
		assert.Equal(t, "Alice dealt: The Ace of Spades", captured[0])
		assert.Equal(t, "Dealer dealt: The King of Hearts", captured[1])
	})

	t.Run("production mode returns nil", func(t *testing.T) {
		m := NewModel(testLogger())
		m.AddLogEntry("Alice dealt: The Ace of Spades")
		assert.Nil(t, m.GetCapturedLog())
	})

	t.Run("clear empties the log", func(t *testing.T) {
		m := NewModelWithOptions(testLogger(), true)
		m.AddLogEntry("round one")
		m.ClearLog()
		m.AddLogEntry("round two")

		assert.Equal(t, []string{"round two"}, m.gameLog, "log restarted")
	})
}

func TestModelInputInjection(t *testing.T) {
	t.Run("injection works in test mode", func(t *testing.T) {
		m := NewModelWithOptions(testLogger(), true)
		require.NoError(t, m.InjectInput("h"))

		value, err := m.WaitForInput()
		require.NoError(t, err)
		assert.Equal(t, "h", value)
	})

	t.Run("injection fails in production mode", func(t *testing.T) {
		m := NewModel(testLogger())
		assert.Error(t, m.InjectInput("h"))
	})

	t.Run("channel holds a single pending answer", func(t *testing.T) {
		m := NewModelWithOptions(testLogger(), true)
		require.NoError(t, m.InjectInput("first"))
		assert.Error(t, m.InjectInput("second"), "second inject must wait for a reader")
	})
}

func TestModelPromptState(t *testing.T) {
	m := NewModelWithOptions(testLogger(), true)

	m.SetPrompt("Hit or stay?", []string{"h", "s"})
	assert.Equal(t, "Hit or stay?", m.prompt)
	assert.Equal(t, []string{"h", "s"}, m.choices)

	m.ClearPrompt()
	assert.Empty(t, m.prompt)
	assert.Nil(t, m.choices)
}

func TestModelTally(t *testing.T) {
	m := NewModelWithOptions(testLogger(), true)
	m.SetTally(3, 1)
	assert.Equal(t, 3, m.playerWins)
	assert.Equal(t, 1, m.dealerWins)
}

// testInterface wires the game-facing adapter to a test-mode model without a
// running Bubble Tea program. Terminal control sequences go to the returned
// buffer.
func testInterface() (*Interface, *Model, *bytes.Buffer) {
	model := NewModelWithOptions(testLogger(), true)
	out := &bytes.Buffer{}
	iface := &Interface{
		model:  model,
		term:   termenv.NewOutput(out),
		logger: testLogger(),
	}
	return iface, model, out
}

func TestInterfacePromptLine(t *testing.T) {
	iface, model, _ := testInterface()
	require.NoError(t, model.InjectInput("Patrick"))

	line, err := iface.PromptLine("What is your name?")
	require.NoError(t, err)
	assert.Equal(t, "Patrick", line)
	assert.Empty(t, model.prompt, "prompt cleared after the answer")
}

func TestInterfacePromptChoice(t *testing.T) {
	t.Run("valid answer returned lowercased", func(t *testing.T) {
		iface, model, _ := testInterface()
		require.NoError(t, model.InjectInput("H"))

		answer, err := iface.PromptChoice("Hit or stay?", []string{"h", "s"})
		require.NoError(t, err)
		assert.Equal(t, "h", answer)
	})

	t.Run("invalid answer logs and reprompts", func(t *testing.T) {
		iface, model, _ := testInterface()
		require.NoError(t, model.InjectInput("x"))

		go func() {
			// The channel holds one answer; retry until the rejected
			// answer has been consumed.
			for model.InjectInput("s") != nil {
			}
		}()

		answer, err := iface.PromptChoice("Hit or stay?", []string{"h", "s"})
		require.NoError(t, err)
		assert.Equal(t, "s", answer)

		captured := model.GetCapturedLog()
		require.NotEmpty(t, captured)
		assert.Contains(t, captured[0], `Invalid choice "x"`)
	})
}

func TestInterfaceShowAndClear(t *testing.T) {
	iface, model, _ := testInterface()

	iface.Show("Welcome to Blackjack")
	assert.Equal(t, []string{"Welcome to Blackjack"}, model.GetCapturedLog())

	iface.Clear()
	assert.Empty(t, model.gameLog)
}

func TestInterfaceCloseRestoresCursor(t *testing.T) {
	iface, _, out := testInterface()

	require.NoError(t, iface.Close())
	assert.Contains(t, out.String(), "\x1b[?25h", "cursor shown on close")
}
