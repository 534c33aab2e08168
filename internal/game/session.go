package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Session repeats rounds against a single UI until the player quits, then
// prints the cumulative tally. Each round gets a fresh deck and cleared
// hands; the tally is the only state that survives round boundaries.
type Session struct {
	ui          UI
	logger      *log.Logger
	rng         *rand.Rand
	clock       quartz.Clock
	dealerPause time.Duration
	playerName  string
	state       SessionState
}

// SessionOption customises a Session
type SessionOption func(*Session)

// WithPlayerName sets the player name up front, skipping the name prompt.
func WithPlayerName(name string) SessionOption {
	return func(s *Session) {
		s.playerName = name
	}
}

// WithSessionClock injects the clock passed through to each round's engine.
func WithSessionClock(clock quartz.Clock) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithSessionDealerPause sets the cosmetic pause between dealer draws.
func WithSessionDealerPause(d time.Duration) SessionOption {
	return func(s *Session) {
		s.dealerPause = d
	}
}

// NewSession creates a session. The RNG seeds every deck shuffle, so a
// deterministic RNG makes the whole session reproducible.
func NewSession(ui UI, logger *log.Logger, rng *rand.Rand, opts ...SessionOption) *Session {
	s := &Session{
		ui:     ui,
		logger: logger,
		rng:    rng,
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the win tally
func (s *Session) State() SessionState {
	return s.state
}

// Run plays rounds until the player answers "n" to the continue prompt, then
// shows the session summary. Errors come from a broken input stream or an
// exhausted deck and end the session immediately.
func (s *Session) Run() error {
	s.ui.Show("-----Welcome to Blackjack-----")

	if s.playerName == "" {
		name, err := s.ui.PromptLine("What is your name?")
		if err != nil {
			return fmt.Errorf("prompting for name: %w", err)
		}
		if name == "" {
			name = "Player"
		}
		s.playerName = name
	}

	player := NewPlayer(s.playerName)
	dealer := NewDealer()
	s.logger.Info("session started", "player", player.Name)

	for {
		s.ui.Clear()
		player.Hand().Reset()
		dealer.Hand().Reset()

		engine := NewRoundEngine(
			deck.New(s.rng), player, dealer, s.ui, s.logger,
			WithClock(s.clock),
			WithDealerPause(s.dealerPause),
		)
		result, err := engine.Play(&s.state)
		if err != nil {
			return err
		}
		s.logger.Info("round complete",
			"outcome", result.Outcome,
			"playerWins", s.state.PlayerWins,
			"dealerWins", s.state.DealerWins)

		if t, ok := s.ui.(TallyDisplay); ok {
			t.SetTally(s.state.PlayerWins, s.state.DealerWins)
		}

		// Anything except a literal "n" keeps playing.
		answer, err := s.ui.PromptLine("Press enter to play again or 'n' to quit.")
		if err != nil {
			return fmt.Errorf("prompting to continue: %w", err)
		}
		if answer == "n" {
			break
		}
	}

	s.ui.Show(fmt.Sprintf("Total wins for %s: %d", s.playerName, s.state.PlayerWins))
	s.ui.Show(fmt.Sprintf("Total wins for %s: %d", DealerName, s.state.DealerWins))
	s.ui.Show("Thanks for playing!")
	return nil
}
