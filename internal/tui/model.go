package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ErrInterrupted is returned from WaitForInput when the user quits the TUI
// mid-prompt (ctrl+c or esc).
var ErrInterrupted = errors.New("tui: interrupted by user")

// Model is the Bubble Tea model for the blackjack table: a scrolling game
// log on top, the running win tally in a sidebar, and a single answer input
// at the bottom. The game loop runs in its own goroutine and talks to the
// model through SetPrompt/WaitForInput.
type Model struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	answerInput textinput.Model

	// State
	gameLog    []string
	inputCh    chan inputResult
	quitSignal chan bool
	quitting   bool

	// Current prompt (set by the game goroutine)
	prompt  string
	choices []string

	// Tally for the sidebar
	playerWins int
	dealerWins int

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

type inputResult struct {
	value string
	err   error
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// NewModel creates a new TUI model
func NewModel(logger *log.Logger) *Model {
	return NewModelWithOptions(logger, false)
}

// NewModelWithOptions creates a new TUI model with test mode option. Test
// mode captures log entries for assertions and skips viewport updates.
func NewModelWithOptions(logger *log.Logger, testMode bool) *Model {
	// Sized properly once the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Your answer"
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		answerInput: ti,
		gameLog:     []string{},
		inputCh:     make(chan inputResult, 1),
		quitSignal:  make(chan bool, 1),
		testMode:    testMode,
		capturedLog: []string{},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

func (m *Model) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.deliver(inputResult{err: ErrInterrupted})
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			m.deliver(inputResult{value: strings.TrimSpace(m.answerInput.Value())})
			m.answerInput.SetValue("")
		case "up", "pgup":
			m.logViewport.ScrollUp(1)
		case "down", "pgdown":
			m.logViewport.ScrollDown(1)
		}
	}

	var cmd tea.Cmd
	m.answerInput, cmd = m.answerInput.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// deliver hands an input result to the waiting game goroutine, dropping it
// when nobody is waiting (stray enter presses between prompts).
func (m *Model) deliver(r inputResult) {
	select {
	case m.inputCh <- r:
	default:
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	// Sidebar pane (right of the log, shows the tally)
	sidebarWidth := 24
	sidebarHeight := max(m.height-lipgloss.Height(actionPane)-2, 1)
	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(sidebarHeight).
		Render(m.renderSidebarPane())

	// Log pane fills the rest
	logWidth := max(m.width-sidebarWidth-6, 1)
	logHeight := max(m.height-lipgloss.Height(actionPane)-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

func (m *Model) renderSidebarPane() string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(" Blackjack "))
	content.WriteString("\n\n")
	content.WriteString(TallyStyle.Render("Session tally"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  You:    %d\n", m.playerWins))
	content.WriteString(fmt.Sprintf("  Dealer: %d\n", m.dealerWins))
	return content.String()
}

func (m *Model) renderActionPane() string {
	var content strings.Builder

	if m.prompt != "" {
		content.WriteString(PromptStyle.Render(m.prompt))
		content.WriteString("\n")
	}
	if len(m.choices) > 0 {
		opts := make([]string, len(m.choices))
		for i, c := range m.choices {
			opts[i] = fmt.Sprintf("[%s]", c)
		}
		content.WriteString(TallyStyle.Render("Answers: " + strings.Join(opts, " ")))
		content.WriteString("\n")
	}

	content.WriteString(m.answerInput.View())
	content.WriteString("\n")
	content.WriteString(HelpStyle.Render("↑↓ scroll log • Enter to submit • Ctrl+C to quit"))
	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = []string{}
	if !m.testMode {
		m.logViewport.SetContent("")
	}
}

// SetPrompt sets the question shown in the action pane. Choices may be nil
// for free-form prompts.
func (m *Model) SetPrompt(prompt string, choices []string) {
	m.prompt = prompt
	m.choices = choices
}

// ClearPrompt removes the current question
func (m *Model) ClearPrompt() {
	m.prompt = ""
	m.choices = nil
}

// SetTally updates the sidebar win counts
func (m *Model) SetTally(playerWins, dealerWins int) {
	m.playerWins = playerWins
	m.dealerWins = dealerWins
}

// WaitForInput blocks until the user submits a line or quits
func (m *Model) WaitForInput() (string, error) {
	result := <-m.inputCh
	return result.value, result.err
}

// SendQuitSignal signals the TUI to quit gracefully
func (m *Model) SendQuitSignal() {
	select {
	case m.quitSignal <- true:
	default:
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectInput programmatically submits an answer (test mode only)
func (m *Model) InjectInput(value string) error {
	if !m.testMode {
		return fmt.Errorf("input injection only available in test mode")
	}

	select {
	case m.inputCh <- inputResult{value: value}:
		return nil
	default:
		return fmt.Errorf("input channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
