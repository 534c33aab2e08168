package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/deck"
)

// roundState tracks where a round is in its lifecycle
type roundState int

const (
	stateDealing roundState = iota
	statePlayerTurn
	stateDealerTurn
	stateResolution
	stateDone
)

// dealerHitMax is the highest total on which the dealer still draws. The
// dealer stands on any 17, soft or hard.
const dealerHitMax = 17

// RoundEngine orchestrates one round: it deals, runs the player and dealer
// turns, and resolves the outcome. Its only observable side effects are
// tally mutation and calls to the UI capabilities; it performs no other I/O.
type RoundEngine struct {
	deck        *deck.Deck
	player      *Participant
	dealer      *Participant
	ui          UI
	logger      *log.Logger
	clock       quartz.Clock
	dealerPause time.Duration
}

// RoundOption customises a RoundEngine
type RoundOption func(*RoundEngine)

// WithClock injects the clock used for the cosmetic pause between dealer
// draws. Tests pass quartz.NewMock.
func WithClock(clock quartz.Clock) RoundOption {
	return func(e *RoundEngine) {
		e.clock = clock
	}
}

// WithDealerPause sets the pause between dealer draws. Zero disables it.
func WithDealerPause(d time.Duration) RoundOption {
	return func(e *RoundEngine) {
		e.dealerPause = d
	}
}

// NewRoundEngine creates an engine for a single round. The deck is expected
// to be fresh and both hands empty; the session owns that lifecycle.
func NewRoundEngine(d *deck.Deck, player, dealer *Participant, ui UI, logger *log.Logger, opts ...RoundOption) *RoundEngine {
	e := &RoundEngine{
		deck:   d,
		player: player,
		dealer: dealer,
		ui:     ui,
		logger: logger,
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Play runs the round state machine to completion and returns the outcome
// with both final totals. An error means the deck ran out or the input
// stream broke, neither of which is recoverable mid-round.
func (e *RoundEngine) Play(session *SessionState) (RoundResult, error) {
	var result RoundResult
	dealerRevealed := false

	for state := stateDealing; state != stateDone; {
		switch state {
		case stateDealing:
			if err := e.dealOpeningHands(); err != nil {
				return RoundResult{}, err
			}
			e.showTable(true)

			// A blackjack on the opening deal short-circuits both turns.
			if e.player.Hand().IsBlackjack() || e.dealer.Hand().IsBlackjack() {
				e.logger.Debug("opening blackjack",
					"playerTotal", e.player.Hand().Total(),
					"dealerTotal", e.dealer.Hand().Total())
				state = stateResolution
			} else {
				state = statePlayerTurn
			}

		case statePlayerTurn:
			busted, err := e.playerTurn()
			if err != nil {
				return RoundResult{}, err
			}
			if busted {
				state = stateResolution
			} else {
				state = stateDealerTurn
			}

		case stateDealerTurn:
			if err := e.dealerTurn(); err != nil {
				return RoundResult{}, err
			}
			dealerRevealed = true
			state = stateResolution

		case stateResolution:
			result = e.resolve(session, !dealerRevealed)
			state = stateDone
		}
	}

	return result, nil
}

func (e *RoundEngine) draw() (deck.Card, error) {
	card, err := e.deck.DealOne()
	if err != nil {
		return deck.Card{}, fmt.Errorf("drawing card: %w", err)
	}
	return card, nil
}

// dealOpeningHands deals two cards each, alternating player and dealer. The
// deck order is already random so the dealing pattern does not affect
// outcomes.
func (e *RoundEngine) dealOpeningHands() error {
	for i := 0; i < 2; i++ {
		for _, p := range []*Participant{e.player, e.dealer} {
			card, err := e.draw()
			if err != nil {
				return err
			}
			p.Hand().AddCard(card)
		}
	}
	e.logger.Debug("opening hands dealt",
		"playerTotal", e.player.Hand().Total(),
		"dealerTotal", e.dealer.Hand().Total(),
		"remaining", e.deck.CardsRemaining())
	return nil
}

// showTable displays both hands. The dealer's first card stays hidden until
// the dealer's turn resolves.
func (e *RoundEngine) showTable(hideDealer bool) {
	e.ui.Show(renderHand(e.player))
	if hideDealer {
		e.ui.Show(renderHandHidden(e.dealer))
	} else {
		e.ui.Show(renderHand(e.dealer))
	}
}

// playerTurn runs the hit/stay loop. It reports whether the player busted.
// Input validation lives in the UI; by the time PromptChoice returns the
// answer is one of the offered options.
func (e *RoundEngine) playerTurn() (bool, error) {
	for {
		answer, err := e.ui.PromptChoice("Would you like to hit (h) or stay (s)?", []string{"h", "s"})
		if err != nil {
			return false, fmt.Errorf("prompting player: %w", err)
		}
		if answer == "s" {
			e.logger.Debug("player stays", "total", e.player.Hand().Total())
			return false, nil
		}

		card, err := e.draw()
		if err != nil {
			return false, err
		}
		e.player.Hand().AddCard(card)
		e.logger.Debug("player hits", "card", card, "total", e.player.Hand().Total())

		e.ui.Clear()
		e.ui.Show(renderDeal(e.player.Name, card))
		e.showTable(true)

		if e.player.Hand().IsBust() {
			e.ui.Show(fmt.Sprintf("%s busted!", e.player.Name))
			return true, nil
		}
	}
}

// dealerTurn draws until the dealer's total passes 17 or busts, then reveals
// the full hand. Only reached when the player did not bust.
func (e *RoundEngine) dealerTurn() error {
	for e.dealer.Hand().Total() <= dealerHitMax {
		card, err := e.draw()
		if err != nil {
			return err
		}
		e.dealer.Hand().AddCard(card)
		e.logger.Debug("dealer draws", "card", card, "total", e.dealer.Hand().Total())

		e.ui.Show(renderDeal(e.dealer.Name, card))
		e.pause()
	}

	e.ui.Clear()
	e.showTable(false)
	if e.dealer.Hand().IsBust() {
		e.ui.Show(fmt.Sprintf("%s busted!", e.dealer.Name))
	}
	return nil
}

// pause inserts the cosmetic delay between dealer draws. Purely theatrical;
// a zero duration skips it entirely.
func (e *RoundEngine) pause() {
	if e.dealerPause <= 0 {
		return
	}
	done := make(chan struct{})
	timer := e.clock.AfterFunc(e.dealerPause, func() {
		close(done)
	})
	defer timer.Stop()
	<-done
}

// resolve compares the hands in fixed precedence order, reports the result,
// and bumps the session tally for the winner. revealDealer is set when the
// dealer turn was skipped (opening blackjack or player bust) and the
// facedown card was never shown.
func (e *RoundEngine) resolve(session *SessionState, revealDealer bool) RoundResult {
	player := e.player.Hand()
	dealer := e.dealer.Hand()

	var outcome Outcome
	var message string

	switch {
	case player.IsBlackjack() && dealer.IsBlackjack():
		outcome = OutcomeDraw
		message = "Two blackjacks! It's a draw."
	case player.IsBlackjack():
		outcome = OutcomePlayerWin
		message = fmt.Sprintf("%s has Blackjack! %s wins!", e.player.Name, e.player.Name)
	case dealer.IsBlackjack():
		outcome = OutcomeDealerWin
		message = fmt.Sprintf("%s has Blackjack! %s wins!", e.dealer.Name, e.dealer.Name)
	case player.IsBust():
		outcome = OutcomeDealerWin
		message = fmt.Sprintf("%s wins!", e.dealer.Name)
	case dealer.IsBust():
		outcome = OutcomePlayerWin
		message = fmt.Sprintf("%s wins!", e.player.Name)
	case player.Total() == dealer.Total():
		outcome = OutcomeDraw
		message = "It's a draw."
	case player.Total() > dealer.Total():
		outcome = OutcomePlayerWin
		message = fmt.Sprintf("%s wins!", e.player.Name)
	default:
		outcome = OutcomeDealerWin
		message = fmt.Sprintf("%s wins!", e.dealer.Name)
	}

	if revealDealer {
		e.ui.Show(renderHand(e.dealer))
	}

	e.ui.Show("-----Round Results-----")
	e.ui.Show(fmt.Sprintf("%s's total is %d.", e.player.Name, player.Total()))
	e.ui.Show(fmt.Sprintf("%s's total is %d.", e.dealer.Name, dealer.Total()))
	e.ui.Show(message)

	session.Record(outcome)
	e.logger.Info("round resolved",
		"outcome", outcome,
		"playerTotal", player.Total(),
		"dealerTotal", dealer.Total())

	return RoundResult{
		Outcome:     outcome,
		PlayerTotal: player.Total(),
		DealerTotal: dealer.Total(),
	}
}
