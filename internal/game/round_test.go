package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

// playRound runs one round against a stacked deck. Cards are consumed in
// order: player, dealer, player, dealer, then hits.
func playRound(t *testing.T, cards string, ui *scriptUI, opts ...RoundOption) (RoundResult, *SessionState, *Participant, *Participant) {
	t.Helper()

	player := NewPlayer("Alice")
	dealer := NewDealer()
	session := &SessionState{}

	engine := NewRoundEngine(deck.NewStacked(deck.MustParseCards(cards)...), player, dealer, ui, testLogger(), opts...)
	result, err := engine.Play(session)
	require.NoError(t, err)

	return result, session, player, dealer
}

func TestPlayerStaysAndWinsOnTotals(t *testing.T) {
	// Player Th 9s stays on 19; dealer Td 8c stands on 18.
	ui := newScriptUI("s")
	result, session, _, _ := playRound(t, "Th Td 9s 8c", ui)

	assert.Equal(t, OutcomePlayerWin, result.Outcome)
	assert.Equal(t, 19, result.PlayerTotal)
	assert.Equal(t, 18, result.DealerTotal)
	assert.Equal(t, 1, session.PlayerWins)
	assert.Equal(t, 0, session.DealerWins)
}

func TestHigherDealerTotalWins(t *testing.T) {
	// Player 5h 9s = 14, hits 3d to 17, stays. Dealer Td 8c = 18 stands.
	ui := newScriptUI("h", "s")
	result, session, player, dealer := playRound(t, "5h Td 9s 8c 3d", ui)

	assert.Equal(t, OutcomeDealerWin, result.Outcome)
	assert.Equal(t, 17, result.PlayerTotal)
	assert.Equal(t, 18, result.DealerTotal)
	assert.Equal(t, 3, player.Hand().Size())
	assert.Equal(t, 2, dealer.Hand().Size())
	assert.Equal(t, 1, session.DealerWins)
	assert.GreaterOrEqual(t, ui.clears, 1, "screen cleared after the hit")
}

func TestEqualTotalsAreADraw(t *testing.T) {
	ui := newScriptUI("s")
	result, session, _, _ := playRound(t, "Th Td 8s 8c", ui)

	assert.Equal(t, OutcomeDraw, result.Outcome)
	assert.Equal(t, 0, session.PlayerWins)
	assert.Equal(t, 0, session.DealerWins)
	assert.True(t, ui.shownContaining("It's a draw."))
}

func TestPlayerBustSkipsDealerTurn(t *testing.T) {
	// Player Th 9s = 19, hits Kh and busts at 29. Dealer 7d 8c = 15 would
	// have to draw, but never acts.
	ui := newScriptUI("h")
	result, session, _, dealer := playRound(t, "Th 7d 9s 8c Kh", ui)

	assert.Equal(t, OutcomeDealerWin, result.Outcome)
	assert.Equal(t, 29, result.PlayerTotal)
	assert.Equal(t, 2, dealer.Hand().Size(), "dealer must not draw after a player bust")
	assert.Equal(t, 1, session.DealerWins)
	assert.True(t, ui.shownContaining("Alice busted!"))
}

func TestDealerBustIsPlayerWin(t *testing.T) {
	// Player Th 8s = 18 stays. Dealer Td 6c = 16 draws Kh and busts at 26.
	ui := newScriptUI("s")
	result, session, _, dealer := playRound(t, "Th Td 8s 6c Kh", ui)

	assert.Equal(t, OutcomePlayerWin, result.Outcome)
	assert.Equal(t, 26, result.DealerTotal)
	assert.Equal(t, 3, dealer.Hand().Size())
	assert.Equal(t, 1, session.PlayerWins)
	assert.True(t, ui.shownContaining("Dealer busted!"))
}

func TestDealerStandsAtEighteenOrMore(t *testing.T) {
	// Dealer Td 8c = 18 at entry: no draw at all.
	ui := newScriptUI("s")
	_, _, _, dealer := playRound(t, "Th Td 9s 8c", ui)
	assert.Equal(t, 2, dealer.Hand().Size())
}

func TestDealerDrawsOnSeventeenOrLess(t *testing.T) {
	// Dealer Td 7c = 17 at entry: must draw at least once. 2h takes the
	// dealer to 19 and it stands.
	ui := newScriptUI("s")
	result, _, _, dealer := playRound(t, "Th Td 8s 7c 2h", ui)

	assert.Equal(t, 3, dealer.Hand().Size())
	assert.Equal(t, 19, result.DealerTotal)
	assert.Equal(t, OutcomeDealerWin, result.Outcome)
}

func TestPlayerBlackjackBeatsDealerEighteen(t *testing.T) {
	// Player Ah Kh is an opening blackjack; dealer Td 8c sits on 18. The
	// blackjack wins outright and nobody is prompted.
	ui := newScriptUI()
	result, session, _, _ := playRound(t, "Ah Td Kh 8c", ui)

	assert.Equal(t, OutcomePlayerWin, result.Outcome)
	assert.Equal(t, 21, result.PlayerTotal)
	assert.Equal(t, 18, result.DealerTotal)
	assert.Equal(t, 1, session.PlayerWins)
	assert.Empty(t, ui.prompts, "blackjack skips the player turn")
	assert.True(t, ui.shownContaining("Alice has Blackjack!"))
}

func TestDealerBlackjackWins(t *testing.T) {
	ui := newScriptUI()
	result, session, _, _ := playRound(t, "Th As 9s Kc", ui)

	assert.Equal(t, OutcomeDealerWin, result.Outcome)
	assert.Equal(t, 1, session.DealerWins)
	assert.Empty(t, ui.prompts)
	assert.True(t, ui.shownContaining("Dealer has Blackjack!"))
}

func TestDoubleBlackjackIsADraw(t *testing.T) {
	ui := newScriptUI()
	result, session, _, _ := playRound(t, "Ah As Kh Kc", ui)

	assert.Equal(t, OutcomeDraw, result.Outcome)
	assert.Equal(t, 0, session.PlayerWins)
	assert.Equal(t, 0, session.DealerWins)
	assert.True(t, ui.shownContaining("Two blackjacks!"))
}

func TestDeterministicEndToEndRound(t *testing.T) {
	// Player draws Th 7s and stays on 17. Dealer draws 9d 6c for 15, must
	// hit, and draws 6h to reach 21.
	ui := newScriptUI("s")
	result, session, player, dealer := playRound(t, "Th 9d 7s 6c 6h", ui)

	assert.Equal(t, 17, player.Hand().Total())
	assert.Equal(t, 21, dealer.Hand().Total())
	assert.Equal(t, OutcomeDealerWin, result.Outcome)
	assert.Equal(t, RoundResult{Outcome: OutcomeDealerWin, PlayerTotal: 17, DealerTotal: 21}, result)
	assert.Equal(t, 1, session.DealerWins)
}

func TestExhaustedDeckAbortsTheRound(t *testing.T) {
	player := NewPlayer("Alice")
	dealer := NewDealer()
	session := &SessionState{}

	// Three cards cannot cover the opening deal.
	engine := NewRoundEngine(deck.NewStacked(deck.MustParseCards("Th 9d 7s")...), player, dealer, newScriptUI(), testLogger())
	_, err := engine.Play(session)

	require.Error(t, err)
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Equal(t, 0, session.PlayerWins)
	assert.Equal(t, 0, session.DealerWins)
}

func TestDealerPauseDoesNotChangeOutcome(t *testing.T) {
	ui := newScriptUI("s")
	result, _, _, _ := playRound(t, "Th Td 8s 6c Kh", ui, WithDealerPause(time.Millisecond))
	assert.Equal(t, OutcomePlayerWin, result.Outcome)
}

func TestHiddenDealerCardDuringPlayerTurn(t *testing.T) {
	ui := newScriptUI("s")
	playRound(t, "Th Td 9s 8c", ui)

	assert.True(t, ui.shownContaining("Facedown card"), "dealer's first card hidden during the player turn")
	assert.True(t, ui.shownContaining("Dealer's total is 18"), "full dealer hand revealed at the end")
}
