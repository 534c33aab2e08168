// Package game implements the core blackjack round logic.
//
// The main types are Hand, which scores cards with the soft/hard Ace
// adjustment, RoundEngine, which runs a single round through its state
// machine (dealing, player turn, dealer turn, resolution), and Session,
// which repeats rounds and keeps the win tally for the life of the process.
//
// # Basic Usage
//
// Run an interactive session against any UI implementation:
//
//	sess := game.NewSession(ui, logger, rng)
//	if err := sess.Run(); err != nil {
//	    // broken terminal or exhausted deck, nothing to recover
//	}
//
// # Deterministic Testing
//
// The engine performs no I/O of its own; it talks to a UI for prompts and
// display and draws from an injected deck. Tests supply a stacked deck and a
// scripted UI:
//
//	d := deck.NewStacked(deck.MustParseCards("Th 7s 9d 6c")...)
//	engine := game.NewRoundEngine(d, player, dealer, scriptedUI, logger)
//
// The cosmetic pause between dealer draws goes through a quartz.Clock, so it
// is a mockable no-op under test.
package game
